package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #f4f7f9;
            color: #1d2b36;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #e3ebf0;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 24px;
            color: #1f8a8c;
            margin: 0;
        }
        h2 {
            color: #1d2b36;
            font-size: 22px;
            margin: 0 0 16px;
        }
        p {
            color: #5b6b77;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .code {
            display: block;
            text-align: center;
            font-size: 28px;
            letter-spacing: 3px;
            color: #1f8a8c;
            font-weight: bold;
            margin: 24px 0;
        }
        .details {
            background: #f4f7f9;
            border-radius: 8px;
            padding: 16px 20px;
            margin: 0 0 16px;
        }
        .details p {
            margin: 4px 0;
        }
        .footer {
            text-align: center;
            color: #93a3ae;
            font-size: 13px;
            margin-top: 24px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo"><h1>Clinique Dentaire du Parc</h1></div>
            {{.Content}}
        </div>
        <div class="footer">
            123 Avenue de la Santé, 75014 Paris — 01 42 68 12 34
        </div>
    </div>
</body>
</html>
`

// ReservationReceivedTemplate acknowledges a booking request
const ReservationReceivedTemplate = `
<h2>Bonjour {{.PatientName}},</h2>
<p>Nous avons bien reçu votre demande de rendez-vous. Notre équipe vous confirmera le créneau sous 24 heures.</p>
<span class="code">{{.ConfirmationNumber}}</span>
<div class="details">
    <p><strong>Date :</strong> {{.Date}}</p>
    <p><strong>Heure :</strong> {{.Time}}</p>
    <p><strong>Consultation :</strong> {{.Occasion}}</p>
</div>
<p>Pour toute modification ou annulation, contactez-nous au 01 42 68 12 34.</p>
`

package usecase

const otpEmailSubject = "Your verification code"

const otpEmailBody = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Verify your account</h2>
  <p>Use the code below to complete your verification. It expires in {{.expires_in_minutes}} minutes.</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.code}}</p>
  <p>If you did not request this code, you can safely ignore this email.</p>
  <hr>
  <p style="font-size: 12px; color: #888;">
    {{.company_name}} &middot; {{.company_address}}<br>
    Need help? Contact {{.support_email}}<br>
    &copy; {{.year}} {{.company_name}}
  </p>
</body>
</html>`

const otpSMSBody = `{{.code}} is your {{.company_name}} verification code. Valid for {{.expires_in_minutes}} minutes.`

const welcomeEmailSubject = "Welcome aboard"

const welcomeEmailBody = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, {{.first_name}}!</h2>
  <p>Your account <b>{{.username}}</b> has been created successfully.</p>
  <p>You can sign in right away and complete your profile.</p>
  <hr>
  <p style="font-size: 12px; color: #888;">
    {{.company_name}} &middot; {{.company_address}}<br>
    Need help? Contact {{.support_email}}<br>
    &copy; {{.year}} {{.company_name}}
  </p>
</body>
</html>`

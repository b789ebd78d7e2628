package usecase

import "fmt"

// Mail subjects and bodies for workflow notifications. Bodies are
// self-contained HTML so they render in any client.

const (
	vendorInvitationSubject    = "Vendor Invitation"
	applicationAwardedSubject  = "Your application has been awarded"
	applicationDeclinedSubject = "Your application has been declined"
)

func vendorInvitationHTML(invitationLink string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <body style="font-family: Arial, sans-serif; background-color: #f5f5f5;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff;">
      <h1>Zoracom Vendor Management System</h1>
      <p>
        We're thrilled to have you on board as a vendor. To complete your
        registration, please click the button below:
      </p>
      <p style="text-align: center;">
        <a style="display: inline-block; padding: 12px 24px; background-color: #007bff; color: #ffffff; text-decoration: none; border-radius: 5px;" href="%[1]s">Register as a Vendor</a>
      </p>
      <p>
        If the button above doesn't work, copy and paste the following
        link into your browser:
      </p>
      <p><a href="%[1]s">%[1]s</a></p>
      <p>Best regards,<br/>Zoracom</p>
    </div>
  </body>
</html>`, invitationLink)
}

func applicationAwardedHTML(listingName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <body style="font-family: Arial, sans-serif;">
    <p>Congratulations! Your application for <b>%s</b> has been awarded.</p>
    <p>Log in to your vendor dashboard for the delivery details.</p>
    <p>Best regards,<br/>Zoracom</p>
  </body>
</html>`, listingName)
}

func applicationDeclinedHTML(listingName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <body style="font-family: Arial, sans-serif;">
    <p>Thank you for your interest in <b>%s</b>. After review, your
    application was not selected this time.</p>
    <p>Best regards,<br/>Zoracom</p>
  </body>
</html>`, listingName)
}

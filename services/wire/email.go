package wire

import (
	"fmt"
	"time"
)

// Email bodies mirror the storefront's transactional template: dark header
// with the logo, white card, contact footer.

func emailShell(baseURL, body string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 24px;">
	  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.06);">
	    <div style="background:#071623;padding:16px 24px;">
	      <img src="%s/src/assets/images/Deluxconex.png" alt="DeluxConex" style="height:40px;display:block;">
	    </div>
	    <div style="padding:24px;">%s</div>
	  </div>
	</div>`, baseURL, body)
}

func requestReceivedEmail(baseURL, name, adminEmail string) string {
	body := fmt.Sprintf(`
	      <h2 style="margin-top:0;color:#071623;">Wire transfer request received</h2>
	      <p style="color:#444;">Hi %s,</p>
	      <p style="color:#444;line-height:1.6;">
	        We have received your request to pay for your order via wire transfer.
	        Our team will prepare a secure payment link with bank details and send it to you shortly.
	      </p>
	      <p style="color:#444;line-height:1.6;">
	        Once you receive the link, you will be able to view the payment details and optionally upload your proof of payment.
	      </p>
	      <p style="color:#444;line-height:1.6;">
	        If you have any questions, please contact us at
	        <a href="mailto:%s">%s</a>.
	      </p>
	      <p style="margin-top:24px;color:#777;font-size:12px;">
	        This email was sent by DeluxConex. If you did not initiate this request, please contact support immediately.
	      </p>`, name, adminEmail, adminEmail)
	return emailShell(baseURL, body)
}

func instructionsEmail(baseURL, name, link string, expiresAt time.Time, adminEmail string) string {
	body := fmt.Sprintf(`
	      <h2 style="margin-top:0;color:#071623;">Your wire transfer instructions</h2>
	      <p style="color:#444;">Hi %s,</p>
	      <p style="color:#444;line-height:1.6;">
	        We have prepared your wire transfer details. Please use the secure link below
	        to view the payment instructions and optionally upload your proof of payment:
	      </p>
	      <p style="margin:24px 0;">
	        <a href="%s" style="display:inline-block;padding:12px 20px;background:#071623;color:#ffffff;text-decoration:none;border-radius:4px;font-weight:bold;">
	          View wire transfer details
	        </a>
	      </p>
	      <p style="color:#444;line-height:1.6;">
	        This link will expire on <strong>%s</strong>.
	      </p>
	      <p style="color:#444;line-height:1.6;">
	        If you have already paid, you can upload your payment receipt through the page
	        or send it directly to <a href="mailto:%s">%s</a>.
	      </p>`, name, link, expiresAt.Format("Mon Jan 2 2006"), adminEmail, adminEmail)
	return emailShell(baseURL, body)
}

func proofReceivedEmail(baseURL, name, adminEmail string) string {
	body := fmt.Sprintf(`
	      <h2 style="margin-top:0;color:#071623;">Payment proof received</h2>
	      <p style="color:#444;">Hi %s,</p>
	      <p style="color:#444;line-height:1.6;">
	        We have received your wire transfer payment details. Our payment team will
	        verify the transfer within <strong>1-3 business days</strong> and process your order.
	      </p>
	      <p style="color:#444;line-height:1.6;">
	        If you have any questions in the meantime, please reach out to
	        <a href="mailto:%s">%s</a>.
	      </p>`, name, adminEmail, adminEmail)
	return emailShell(baseURL, body)
}

func proofSubmittedAdminEmail(orderID, invoiceID, userID, proofURL string) string {
	proofLine := ""
	if proofURL != "" {
		proofLine = fmt.Sprintf(`Proof URL: <a href="%s">%s</a>`, proofURL, proofURL)
	}
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding:16px;">
	  <h2>Wire transfer payment submitted</h2>
	  <p>
	    A customer has submitted proof of payment for a wire transfer.<br/>
	    Order ID: %s<br/>
	    Invoice ID: %s<br/>
	    User ID: %s<br/>
	    %s
	  </p>
	  <p>
	    Please log into the admin dashboard to review the payment request and update the payment and invoice statuses.
	  </p>
	</div>`, orderID, invoiceID, userID, proofLine)
}

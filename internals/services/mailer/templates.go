package mailer

import "fmt"

const (
	KindAdminAdded       = "admin_added"
	KindCashPayment      = "workshop_cash_payment"
	KindPaymentSucceeded = "workshop_payment_success"
	KindPaymentFailed    = "workshop_payment_failure"
)

func AdminAdded(appName, to string) Message {
	return Message{
		Kind:    KindAdminAdded,
		To:      to,
		Subject: "Admin added successfully",
		Text:    fmt.Sprintf("You have been granted administrative access to %s\n\n Thank you\n\n", appName),
	}
}

func WorkshopCashPayment(appName, to, workshopName string) Message {
	return Message{
		Kind:    KindCashPayment,
		To:      to,
		Subject: fmt.Sprintf("%s Workshop Cash Payment done successfully", appName),
		Text:    fmt.Sprintf("You have successfully registered for %s workshop\n\n Thank you\n\n", workshopName),
	}
}

func WorkshopPaymentSucceeded(appName, to, workshopName string) Message {
	return Message{
		Kind:    KindPaymentSucceeded,
		To:      to,
		Subject: fmt.Sprintf("%s Workshop Payment done successfully", appName),
		Text:    fmt.Sprintf("You have successfully registered for %s workshop\n\n Thank you\n\n", workshopName),
	}
}

func WorkshopPaymentFailed(appName, to, workshopName string) Message {
	return Message{
		Kind:    KindPaymentFailed,
		To:      to,
		Subject: fmt.Sprintf("%s Workshop Payment failed", appName),
		Text:    fmt.Sprintf("Your payment for %s workshop is failed.\n\n Thank you\n\n", workshopName),
	}
}

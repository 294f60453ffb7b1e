package constants

// NATS Subjects
const (
	// Users Service
	SubjectUserRegistered = "user.registered"

	// Payments Service
	SubjectBookingCreated   = "booking.created"
	SubjectBookingCompleted = "booking.completed"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectPaymentReleased  = "payment.released"
	SubjectDepositConfirmed = "wallet.deposit.confirmed"
)

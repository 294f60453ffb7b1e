package constants

// Redis key formats
const (
	// Payments Service
	KeyUserPaymentLock = "payments:lock:%s" // Format: payments:lock:{user_id}

	// Match Service
	KeyAvailability     = "match:avail:%s:%s" // Format: match:avail:{category}:{geohash}
	KeyProfessionalRefs = "match:prof:%s"     // Format: match:prof:{professional_id}, set of availability keys
)

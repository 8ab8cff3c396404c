package constants

const (
	TICKET_PENDING   = "pending"
	TICKET_CONFIRMED = "confirmed"
	TICKET_REJECTED  = "rejected"
)

var TICKET_STATUSES = []string{TICKET_PENDING, TICKET_CONFIRMED, TICKET_REJECTED}

const (
	DEFAULT_DRAW_TIME    = "20:00"
	WINNING_NUMBER_COUNT = 4
	TICKET_NUMBER_COUNT  = 4
	TICKET_NUMBER_MIN    = 1
	TICKET_NUMBER_MAX    = 50
	MAX_RECEIPT_SIZE     = 5 * 1024 * 1024
	DRAW_CHANNEL         = "lottery:winning-numbers"
)

const (
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Id must be a number"
	DATABASE_NOT_CONFIGURED  = "Database not configured"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	PHONE_AND_NUMBERS_REQ    = "Phone and numbers are required"
	NUMBERS_NOT_INT_ARRAY    = "numbers must be a JSON array of integers"
	INVALID_TICKET_NUMBERS   = "numbers must be 4 distinct values between 1 and 50"
	INVALID_STATUS           = "status must be one of pending, confirmed, rejected"
	INVALID_RECEIPT          = "receipt must be an image up to 5MB"
	WINNING_NUMBERS_REQUIRED = "Exactly 4 numbers and a draw date are required"
	TICKET_NOT_PROCESSABLE   = "Ticket not found or already processed"
	TICKET_NOT_FOUND         = "Ticket not found"
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_CREDENTIALS      = "Invalid username or password"
	AUTH_NOT_ENABLED         = "Admin login is not enabled"
	MISSING_TOKEN            = "Missing token"
	INVALID_TOKEN            = "Invalid token"
	WINNING_NUMBERS_CLEARED  = "Winning numbers cleared"

	ERROR_PARSE_DATA_TO_LOCALS = "Parse data to locals fail"
	CANNOT_STORE_RECEIPT       = "Cannot store receipt"
	CANNOT_GENERATE_QR         = "Cannot generate QR code"
)

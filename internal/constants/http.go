package constants

// HTTP Header Names
const (
	HeaderContentType     = "Content-Type"
	HeaderXRequestID      = "X-Request-ID"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderXForwardedProto = "X-Forwarded-Proto"
	HeaderXRealIP         = "X-Real-IP"
	HeaderXCache          = "X-Cache"
)

const ContentTypeJSON = "application/json"

// Common HTTP Error Messages
const (
	MsgUnauthorized    = "Unauthorized"
	MsgBadRequest      = "Invalid request"
	MsgInvalidID       = "ID tidak valid"
	MsgInvalidQuery    = "Parameter query tidak valid"
	MsgInternalError   = "Internal server error"
	MsgTooManyRequests = "Too many requests"
	MsgOriginForbidden = "Origin not allowed"
)

const MsgDeleted = "Data berhasil dihapus."

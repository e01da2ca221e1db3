package values

// Status strings carried in every ServerResponse and mapped to HTTP
// status codes by util.StatusCode.
const (
	Success        = "success"
	Created        = "created"
	Error          = "internal-error"
	BadRequestBody = "bad-request"
	Unprocessable  = "unprocessable"
	NotFound       = "not-found"
	Conflict       = "conflict"
	NotAllowed     = "not-allowed"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
)

// SystemErr is the generic user-facing failure message. Store-level
// details never reach the client.
const SystemErr = "Noe gikk galt. Prøv igjen senere."

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestedWith = "X-Requested-With"
)

// Session cookie name.
const SessionCookie = "wcag_session"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type contextKey string

const (
	ContextTracingKey = contextKey("tracing-context")
	ContextSessionKey = contextKey("session")
)

package consts

// Template marker characters. A segment beginning with RuneColon declares a
// named argument, RuneAsterisk a trailing wildcard, and a RuneQuestion suffix
// marks an argument optional.
const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	RuneAsterisk = '*'
	RuneQuestion = '?'
	RuneAmp      = '&'
	RuneEquals   = '='
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"

	// DefaultScheme is used by the builder when no scheme was set.
	DefaultScheme = SchemeHTTPS
)

const (
	StrSlash      = "/"
	StrSlashSlash = "//"
)

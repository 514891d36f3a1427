package routes

// Route is a screen path.
type Route string

// Home is the landing screen with the login and register buttons.
const Home Route = "/"

// Login is the email/password login screen.
const Login Route = "/login"

// Register is the first registration step (personal data and password).
const Register Route = "/cadastro"

// Register2 is the second registration step. It needs the first step's data
// and falls back to Register without it.
const Register2 Route = "/cadastro-2"

// Dashboard is shown after a successful login.
const Dashboard Route = "/dashboard"

// ForgotPassword is linked from the login screen.
const ForgotPassword Route = "/recuperar-senha"

// All lists every known route.
var All = []Route{Home, Login, Register, Register2, Dashboard, ForgotPassword}

// Title returns the header title shown for a route.
func (r Route) Title() string {
	switch r {
	case Home:
		return "InfoHub"
	case Login:
		return "login"
	case Register:
		return "cadastro"
	case Register2:
		return "cadastro 2"
	case Dashboard:
		return "dashboard"
	case ForgotPassword:
		return "recuperar senha"
	default:
		return string(r)
	}
}

// Parse maps a path to a known route.
func Parse(path string) (Route, bool) {
	for _, r := range All {
		if string(r) == path {
			return r, true
		}
	}
	return "", false
}

package validation

import "strings"

var (
	usernameRules = []Rule{
		{Tag: "required", Msg: "Username is required."},
		{Tag: "min=8", Msg: "Username must be at least 8 characters long."},
		{Tag: "alphanum", Msg: "Username has non-alphanumeric characters."},
	}
	passwordRules = []Rule{
		{Tag: "required", Msg: "Password is required."},
		{Tag: "min=8", Msg: "Password must be at least 8 characters long."},
		{Tag: "containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ", Msg: "Password must have an uppercase letter."},
		{Tag: "containsany=abcdefghijklmnopqrstuvwxyz", Msg: "Password must have a lowercase letter."},
		{Tag: "containsany=0123456789", Msg: "Password must have at least one digit."},
		{Tag: "containsany=!@#$%", Msg: "Password must have at least one of the following symbols (!,@,#,$,%)"},
	}
)

// Signup holds the sanitised signup fields. Password is only trimmed: it is
// never rendered and must hash the same way at login.
type Signup struct {
	Username  string
	Password  string
	AdminCode string
}

// CheckSignup sanitises the raw signup fields and validates them.
func CheckSignup(username, password, adminCode string) (Signup, []Violation) {
	s := Signup{
		Username:  Sanitize(username),
		Password:  strings.TrimSpace(password),
		AdminCode: Sanitize(adminCode),
	}
	var vs []Violation
	vs = append(vs, Check("username", s.Username, usernameRules...)...)
	vs = append(vs, Check("password", s.Password, passwordRules...)...)
	return s, vs
}

// BookFields holds the sanitised book form.
type BookFields struct {
	Title    string
	AuthorID string
	Summary  string
	ISBN     string
	GenreIDs []string
}

// CheckBook sanitises and validates a book form. Creating requires a title of
// at least two characters and reports only that; updating only requires one.
func CheckBook(title, author, summary, isbn string, genres []string, creating bool) (BookFields, []Violation) {
	f := BookFields{
		Title:    Sanitize(title),
		AuthorID: Sanitize(author),
		Summary:  Sanitize(summary),
		ISBN:     Sanitize(isbn),
		GenreIDs: NormalizeIDs(genres),
	}

	titleRules := []Rule{{Tag: "required", Msg: "Title must not be empty."}}
	if creating {
		titleRules = []Rule{{Tag: "min=2", Msg: "Title must be at least 2 characters long."}}
	}

	var vs []Violation
	vs = append(vs, Check("title", f.Title, titleRules...)...)
	vs = append(vs, Check("author", f.AuthorID, Rule{Tag: "required", Msg: "Author must not be empty."})...)
	if f.AuthorID != "" {
		vs = append(vs, Check("author", f.AuthorID, Rule{Tag: "uuid", Msg: "Author does not exist."})...)
	}
	vs = append(vs, Check("summary", f.Summary, Rule{Tag: "required", Msg: "Summary must not be empty."})...)
	vs = append(vs, Check("isbn", f.ISBN, Rule{Tag: "required", Msg: "ISBN must not be empty."})...)

	for _, id := range f.GenreIDs {
		if err := validate.Var(id, "uuid"); err != nil {
			vs = append(vs, Violation{Field: "genre", Msg: "Genre does not exist."})
			break
		}
	}
	return f, vs
}

package domain

// HairColor is the closed set of hair colors a person may declare.
type HairColor string

// Allowed hair colors.
const (
	HairColorWhite HairColor = "white"
	HairColorBrown HairColor = "brown"
	HairColorBlack HairColor = "black"
	HairColorBlond HairColor = "blond"
	HairColorRed   HairColor = "red"
)

// HairColors returns every allowed hair color in declaration order.
func HairColors() []HairColor {
	return []HairColor{HairColorWhite, HairColorBrown, HairColorBlack, HairColorBlond, HairColorRed}
}

// Person is the write-side shape of a person, as submitted by clients.
// Password is accepted here and never appears in any response.
type Person struct {
	FirstName string              `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string              `json:"last_name"  validate:"required,min=1,max=50"`
	Age       *int                `json:"age"        validate:"required,gt=0,lte=115"`
	Email     string              `json:"email"      validate:"required,email"`
	HairColor Optional[HairColor] `json:"hair_color" validate:"omitnil,hair_color"`
	IsMarried Optional[bool]      `json:"is_married"`
	Homepage  Optional[string]    `json:"homepage"   validate:"omitnil,http_url"`
	Password  string              `json:"password"   validate:"required,min=8"`
}

// PersonOut is the read-facing projection of a Person. It has no password field.
type PersonOut struct {
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Age       int                 `json:"age"`
	Email     string              `json:"email"`
	HairColor Optional[HairColor] `json:"hair_color"`
	IsMarried Optional[bool]      `json:"is_married"`
	Homepage  Optional[string]    `json:"homepage"`
}

// Out projects the person to its read-facing shape.
func (p Person) Out() PersonOut {
	out := PersonOut{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		HairColor: p.HairColor,
		IsMarried: p.IsMarried,
		Homepage:  p.Homepage,
	}
	if p.Age != nil {
		out.Age = *p.Age
	}
	return out
}

// PersonRecord is a person after the write path has processed it: the
// plaintext password is replaced by its hash.
type PersonRecord struct {
	PersonOut
	PasswordHash string `json:"-"`
}

// PersonWithLocation is the merged result of updating a person together
// with their location. The embedded fields flatten into one JSON object.
type PersonWithLocation struct {
	PersonOut
	Location
}

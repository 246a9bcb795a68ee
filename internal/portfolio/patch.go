package portfolio

// Patch is a partial document. Every non-nil field replaces the matching
// document field wholesale; nil fields leave the document untouched.
// Slices are replaced, never merged element-wise.
//
// Profile fields may be given flat or nested under "profile", the shape a
// Document encodes to. Flat fields win when both are present.
type Patch struct {
	Profile *ProfilePatch `json:"profile,omitempty"`

	Name              *string `json:"name,omitempty"`
	Title             *string `json:"title,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	Email             *string `json:"email,omitempty"`
	GitHub            *string `json:"github,omitempty"`
	LinkedIn          *string `json:"linkedin,omitempty"`
	Twitter           *string `json:"twitter,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`

	BrandKeywords *[]string     `json:"brandKeywords,omitempty"`
	Skills        *[]string     `json:"skills,omitempty"`
	Experiences   *[]Experience `json:"experiences,omitempty"`
	Projects      *[]Project    `json:"projects,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p Patch) IsEmpty() bool {
	return p.Profile.isEmpty() && p.Name == nil && p.Title == nil && p.Bio == nil && p.Email == nil &&
		p.GitHub == nil && p.LinkedIn == nil && p.Twitter == nil &&
		p.ProfilePictureURL == nil && p.BrandKeywords == nil && p.Skills == nil &&
		p.Experiences == nil && p.Projects == nil
}

// Apply returns a copy of d with every present patch field overwritten.
// The result shares no memory with d or with the patch.
func (p Patch) Apply(d Document) Document {
	out := d.Clone()
	p.Profile.apply(&out.Profile)
	setString(&out.Profile.Name, p.Name)
	setString(&out.Profile.Title, p.Title)
	setString(&out.Profile.Bio, p.Bio)
	setString(&out.Profile.Email, p.Email)
	setString(&out.Profile.GitHub, p.GitHub)
	setString(&out.Profile.LinkedIn, p.LinkedIn)
	setString(&out.Profile.Twitter, p.Twitter)
	setString(&out.Profile.ProfilePictureURL, p.ProfilePictureURL)
	if p.BrandKeywords != nil {
		out.Profile.BrandKeywords = cloneStrings(*p.BrandKeywords)
	}
	if p.Skills != nil {
		out.Skills = cloneStrings(*p.Skills)
	}
	if p.Experiences != nil {
		out.Experiences = cloneExperiences(*p.Experiences)
	}
	if p.Projects != nil {
		out.Projects = cloneProjects(*p.Projects)
	}
	return out
}

// ProfilePatch is the nested profile part of a Patch.
type ProfilePatch struct {
	Name              *string   `json:"name,omitempty"`
	Title             *string   `json:"title,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	Email             *string   `json:"email,omitempty"`
	GitHub            *string   `json:"github,omitempty"`
	LinkedIn          *string   `json:"linkedin,omitempty"`
	Twitter           *string   `json:"twitter,omitempty"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty"`
	BrandKeywords     *[]string `json:"brandKeywords,omitempty"`
}

func (pp *ProfilePatch) isEmpty() bool {
	return pp == nil || (pp.Name == nil && pp.Title == nil && pp.Bio == nil &&
		pp.Email == nil && pp.GitHub == nil && pp.LinkedIn == nil &&
		pp.Twitter == nil && pp.ProfilePictureURL == nil && pp.BrandKeywords == nil)
}

func (pp *ProfilePatch) apply(dst *Profile) {
	if pp == nil {
		return
	}
	setString(&dst.Name, pp.Name)
	setString(&dst.Title, pp.Title)
	setString(&dst.Bio, pp.Bio)
	setString(&dst.Email, pp.Email)
	setString(&dst.GitHub, pp.GitHub)
	setString(&dst.LinkedIn, pp.LinkedIn)
	setString(&dst.Twitter, pp.Twitter)
	setString(&dst.ProfilePictureURL, pp.ProfilePictureURL)
	if pp.BrandKeywords != nil {
		dst.BrandKeywords = cloneStrings(*pp.BrandKeywords)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T { return &v }

package resume

import "strings"

// ContactType identifies the kind of a contact method.
type ContactType string

const (
	ContactEmail         ContactType = "EMAIL"
	ContactPhone         ContactType = "PHONE"
	ContactMobile        ContactType = "MOBILE"
	ContactLinkedIn      ContactType = "LINKEDIN"
	ContactGitHub        ContactType = "GITHUB"
	ContactPortfolio     ContactType = "PORTFOLIO"
	ContactWebsite       ContactType = "WEBSITE"
	ContactTwitter       ContactType = "TWITTER"
	ContactMastodon      ContactType = "MASTODON"
	ContactDevTo         ContactType = "DEV_TO"
	ContactStackOverflow ContactType = "STACK_OVERFLOW"
	ContactLeetCode      ContactType = "LEETCODE"
	ContactHackerRank    ContactType = "HACKER_RANK"
	ContactBlog          ContactType = "BLOG"
	ContactMedium        ContactType = "MEDIUM"
	ContactYouTube       ContactType = "YOUTUBE"
	ContactDiscord       ContactType = "DISCORD"
	ContactTelegram      ContactType = "TELEGRAM"
	ContactSlack         ContactType = "SLACK"
	ContactWhatsApp      ContactType = "WHATSAPP"
	ContactSignal        ContactType = "SIGNAL"
	ContactCity          ContactType = "CITY"
	ContactCountry       ContactType = "COUNTRY"
	ContactTimezone      ContactType = "TIMEZONE"
	ContactPublicKey     ContactType = "PUBLIC_KEY"
)

var contactTypes = []ContactType{
	ContactEmail, ContactPhone, ContactMobile, ContactLinkedIn, ContactGitHub,
	ContactPortfolio, ContactWebsite, ContactTwitter, ContactMastodon, ContactDevTo,
	ContactStackOverflow, ContactLeetCode, ContactHackerRank, ContactBlog, ContactMedium,
	ContactYouTube, ContactDiscord, ContactTelegram, ContactSlack, ContactWhatsApp,
	ContactSignal, ContactCity, ContactCountry, ContactTimezone, ContactPublicKey,
}

// ContactTypes returns every known contact type in declaration order.
func ContactTypes() []ContactType {
	out := make([]ContactType, len(contactTypes))
	copy(out, contactTypes)
	return out
}

// Valid reports whether t is a known contact type.
func (t ContactType) Valid() bool {
	for _, known := range contactTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsURL reports whether values of this type are links.
func (t ContactType) IsURL() bool {
	return t == ContactLinkedIn || t == ContactGitHub || t == ContactPortfolio
}

// Label is the display name used by renderers.
func (t ContactType) Label() string {
	switch t {
	case ContactEmail:
		return "Email"
	case ContactPhone:
		return "Phone"
	case ContactLinkedIn:
		return "LinkedIn"
	case ContactGitHub:
		return "GitHub"
	case ContactDevTo:
		return "DEV"
	case ContactStackOverflow:
		return "Stack Overflow"
	case ContactLeetCode:
		return "LeetCode"
	case ContactHackerRank:
		return "HackerRank"
	case ContactYouTube:
		return "YouTube"
	case ContactWhatsApp:
		return "WhatsApp"
	case ContactPublicKey:
		return "Public key"
	default:
		s := strings.ToLower(string(t))
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Proficiency is a spoken-language proficiency level.
type Proficiency string

const (
	ProficiencyBasic        Proficiency = "BASIC"
	ProficiencyIntermediate Proficiency = "INTERMEDIATE"
	ProficiencyAdvanced     Proficiency = "ADVANCED"
	ProficiencyFluent       Proficiency = "FLUENT"
	ProficiencyNative       Proficiency = "NATIVE"
)

var proficiencies = []Proficiency{
	ProficiencyBasic, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyFluent, ProficiencyNative,
}

// Proficiencies returns every known proficiency level from lowest to highest.
func Proficiencies() []Proficiency {
	out := make([]Proficiency, len(proficiencies))
	copy(out, proficiencies)
	return out
}

// Valid reports whether p is a known proficiency level.
func (p Proficiency) Valid() bool {
	for _, known := range proficiencies {
		if p == known {
			return true
		}
	}
	return false
}

// Label is the lowercase display form, e.g. "fluent".
func (p Proficiency) Label() string {
	return strings.ToLower(string(p))
}

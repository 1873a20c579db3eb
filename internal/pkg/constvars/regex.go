package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexPhoneNumberWithCountryCode   = `^\+[1-9]\d{9,14}$`
)

package form

import "net/url"

// Validate checks that longURL is present and absolute. The custom short
// code is not validated here; collisions are the shortening service's business.
func Validate(longURL string) error {
	if longURL == "" {
		return &ValidationError{Message: MsgEmptyURL}
	}

	u, err := url.ParseRequestURI(longURL)
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "" && u.Path == "") {
		return &ValidationError{Message: MsgInvalidURL}
	}

	return nil
}

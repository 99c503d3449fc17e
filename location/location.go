// Package location handles the "name|link" encoding used for the place fields.
package location

import (
	"net/url"
	"strings"
)

const separator = "|"

type Place struct {
	Name string
	Link string
}

// ParsePlace splits value on the first separator. The link is kept only when
// it is an absolute http(s) url.
func ParsePlace(value string) Place {
	name, link, _ := strings.Cut(value, separator)
	place := Place{Name: strings.TrimSpace(name)}
	if link = strings.TrimSpace(link); isWebLink(link) {
		place.Link = link
	}
	return place
}

func (p Place) HasLink() bool {
	return p.Link != ""
}

func (p Place) String() string {
	if p.Link == "" {
		return p.Name
	}
	return p.Name + separator + p.Link
}

func isWebLink(link string) bool {
	if link == "" {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

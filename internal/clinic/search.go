package clinic

import (
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	ProviderNaver  Provider = "naver"
	ProviderKakao  Provider = "kakao"
	ProviderGoogle Provider = "google"
)

var Providers = []Provider{ProviderNaver, ProviderKakao, ProviderGoogle}

// DefaultKeyword is the Korean name of a psychiatry department, which is what
// the local map services index clinics under.
const DefaultKeyword = "정신건강의학과"

func (p Provider) Valid() bool {
	switch p {
	case ProviderNaver, ProviderKakao, ProviderGoogle:
		return true
	}
	return false
}

func (p Provider) String() string { return string(p) }

func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown map provider %q (want naver, kakao or google)", s)
	}
	return p, nil
}

// SearchURL builds a map search link for keyword, prefixed by region when
// one is given. An empty keyword falls back to DefaultKeyword.
func SearchURL(p Provider, keyword, region string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		keyword = DefaultKeyword
	}
	query := keyword
	if r := strings.TrimSpace(region); r != "" && !strings.EqualFold(r, AllRegions) {
		query = r + " " + keyword
	}

	switch p {
	case ProviderNaver:
		return "https://map.naver.com/v5/search/" + url.PathEscape(query), nil
	case ProviderKakao:
		return "https://map.kakao.com/?q=" + url.QueryEscape(query), nil
	case ProviderGoogle:
		return "https://www.google.com/maps/search/" + url.PathEscape(query), nil
	}
	return "", fmt.Errorf("unknown map provider %q", p)
}

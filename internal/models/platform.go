// This file defines the set of webtoon platforms the decoder knows about.

package models

// Platform represents one source service, identified in archive file
// names by a short acronym.
type Platform struct {
	Acronym string `json:"acronym"`
	Name    string `json:"name"`
}

// Platforms is the closed table of known services, in display order.
// Unknown acronyms are not an error; they pass through unresolved.
var Platforms = []Platform{
	{Acronym: "BOMTOON", Name: "Bomtoon"},
	{Acronym: "COMICO", Name: "Comico"},
	{Acronym: "DAUM", Name: "Daum Webtoon"},
	{Acronym: "KAKAO", Name: "KakaoPage"},
	{Acronym: "LEZHIN", Name: "Lezhin Comics"},
	{Acronym: "NAVER", Name: "Naver Webtoon"},
	{Acronym: "TOOMICS", Name: "Toomics"},
	{Acronym: "TOPTOON", Name: "Toptoon"},
}

// ResolvePlatform maps an acronym to its display name. The match is
// exact (case-sensitive); an unrecognized acronym is returned verbatim
// so the record still carries whatever the file name said.
func ResolvePlatform(acronym string) string {
	for _, p := range Platforms {
		if p.Acronym == acronym {
			return p.Name
		}
	}
	return acronym
}

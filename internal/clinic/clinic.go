// Package clinic holds a static directory of psychiatric clinics that see
// adults for ADHD, and builds map-search links for finding others.
package clinic

import (
	"strings"
)

type Clinic struct {
	Name     string   `json:"name" yaml:"name"`
	Region   string   `json:"region" yaml:"region"`
	Phone    string   `json:"phone" yaml:"phone"`
	Website  string   `json:"website" yaml:"website"`
	Address  string   `json:"address" yaml:"address"`
	Features []string `json:"features" yaml:"features"`
}

// AllRegions is the filter value that matches every clinic.
const AllRegions = "All"

var regions = []string{
	"Seoul", "Gyeonggi", "Incheon", "Busan", "Daegu", "Daejeon", "Gwangju",
	"Ulsan", "Sejong", "Gangwon", "Chungbuk", "Chungnam", "Jeonbuk",
	"Jeonnam", "Gyeongbuk", "Gyeongnam", "Jeju",
}

// The directory is not maintained against live data; contact details should
// be checked before a visit.
var directory = []Clinic{
	{
		Name:     "Seoul National University Hospital, Psychiatry",
		Region:   "Seoul",
		Phone:    "02-2072-2972",
		Website:  "http://www.snuh.org",
		Address:  "101 Daehak-ro, Jongno-gu, Seoul",
		Features: []string{"Adult ADHD specialty", "Full assessment", "Medication", "CBT"},
	},
	{
		Name:     "Samsung Medical Center, Psychiatry",
		Region:   "Seoul",
		Phone:    "02-3410-3583",
		Website:  "http://www.samsunghospital.com",
		Address:  "81 Irwon-ro, Gangnam-gu, Seoul",
		Features: []string{"ADHD clinic", "Adults and adolescents", "Psychological testing", "Medication"},
	},
	{
		Name:     "Severance Hospital, Psychiatry",
		Region:   "Seoul",
		Phone:    "02-2228-5114",
		Website:  "http://www.severance.or.kr",
		Address:  "50-1 Yonsei-ro, Seodaemun-gu, Seoul",
		Features: []string{"ADHD clinic", "Full assessment", "Psychotherapy", "Medication"},
	},
	{
		Name:     "Asan Medical Center, Psychiatry",
		Region:   "Seoul",
		Phone:    "02-3010-3410",
		Website:  "http://www.amc.seoul.kr",
		Address:  "88 Olympic-ro 43-gil, Songpa-gu, Seoul",
		Features: []string{"Adult ADHD", "Psychological evaluation", "Medication", "CBT"},
	},
	{
		Name:     "Seoul St. Mary's Hospital",
		Region:   "Seoul",
		Phone:    "02-2258-5114",
		Website:  "http://www.cmcseoul.or.kr",
		Address:  "222 Banpo-daero, Seocho-gu, Seoul",
		Features: []string{"ADHD diagnosis", "Psychological testing", "Counseling", "Medication"},
	},
	{
		Name:     "Kyung Hee University Hospital, Psychiatry",
		Region:   "Seoul",
		Phone:    "02-958-8556",
		Website:  "http://www.khmc.or.kr",
		Address:  "23 Kyungheedae-ro, Dongdaemun-gu, Seoul",
		Features: []string{"ADHD clinic", "Psychological evaluation", "Counseling"},
	},
	{
		Name:     "Korea University Anam Hospital",
		Region:   "Seoul",
		Phone:    "02-920-5354",
		Website:  "http://www.anam.kumc.or.kr",
		Address:  "73 Goryeodae-ro, Seongbuk-gu, Seoul",
		Features: []string{"Adult ADHD", "Psychological testing", "Medication"},
	},
	{
		Name:     "Seoul National University Bundang Hospital, Psychiatry",
		Region:   "Gyeonggi",
		Phone:    "031-787-7114",
		Website:  "http://www.snubh.org",
		Address:  "82 Gumi-ro 173beon-gil, Bundang-gu, Seongnam",
		Features: []string{"ADHD specialty", "Full assessment", "Counseling", "Medication"},
	},
	{
		Name:     "Ajou University Hospital, Psychiatry",
		Region:   "Gyeonggi",
		Phone:    "031-219-5180",
		Website:  "http://www.ajoumc.or.kr",
		Address:  "164 World cup-ro, Yeongtong-gu, Suwon",
		Features: []string{"ADHD diagnosis", "Psychological evaluation", "Treatment"},
	},
	{
		Name:     "Incheon St. Mary's Hospital, Psychiatry",
		Region:   "Incheon",
		Phone:    "032-280-5114",
		Website:  "http://www.cmcis.or.kr",
		Address:  "56 Dongsu-ro, Bupyeong-gu, Incheon",
		Features: []string{"ADHD clinic", "Psychological testing", "Counseling"},
	},
	{
		Name:     "Pusan National University Hospital, Psychiatry",
		Region:   "Busan",
		Phone:    "051-240-7314",
		Website:  "http://www.pnuh.or.kr",
		Address:  "179 Gudeok-ro, Seo-gu, Busan",
		Features: []string{"Adult ADHD", "Psychological evaluation", "Medication"},
	},
	{
		Name:     "Kyungpook National University Chilgok Hospital",
		Region:   "Daegu",
		Phone:    "053-200-2171",
		Website:  "http://www.knuch.or.kr",
		Address:  "807 Hoguk-ro, Buk-gu, Daegu",
		Features: []string{"ADHD diagnosis", "Psychological testing", "Treatment"},
	},
	{
		Name:     "Chonnam National University Hospital, Psychiatry",
		Region:   "Gwangju",
		Phone:    "062-220-5170",
		Website:  "http://www.cnuh.com",
		Address:  "42 Jebong-ro, Dong-gu, Gwangju",
		Features: []string{"ADHD clinic", "Psychological evaluation", "Counseling"},
	},
	{
		Name:     "Chungnam National University Hospital, Psychiatry",
		Region:   "Daejeon",
		Phone:    "042-280-7280",
		Website:  "http://www.cnuh.co.kr",
		Address:  "282 Munhwa-ro, Jung-gu, Daejeon",
		Features: []string{"Adult ADHD", "Psychological testing", "Medication"},
	},
	{
		Name:     "Ulsan University Hospital, Psychiatry",
		Region:   "Ulsan",
		Phone:    "052-250-7070",
		Website:  "http://www.uuh.ulsan.kr",
		Address:  "877 Bangeojinsunhwan-doro, Dong-gu, Ulsan",
		Features: []string{"ADHD diagnosis", "Psychological evaluation", "Treatment"},
	},
}

// Regions returns the selectable region names, AllRegions first.
func Regions() []string {
	return append([]string{AllRegions}, regions...)
}

// NormalizeRegion maps a user-typed region onto its canonical spelling. The
// second return is false for names that are not in the region list.
func NormalizeRegion(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllRegions) {
		return "", true
	}
	for _, r := range regions {
		if strings.EqualFold(r, s) {
			return r, true
		}
	}
	return "", false
}

// ByRegion lists clinics in region, compared case-insensitively. An empty
// region or AllRegions returns the whole directory.
func ByRegion(region string) []Clinic {
	region = strings.TrimSpace(region)
	all := region == "" || strings.EqualFold(region, AllRegions)

	var out []Clinic
	for _, c := range directory {
		if all || strings.EqualFold(c.Region, region) {
			c.Features = append([]string(nil), c.Features...)
			out = append(out, c)
		}
	}
	return out
}

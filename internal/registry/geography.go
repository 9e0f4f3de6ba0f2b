package registry

import (
	"slices"
	"sort"
)

// Province groups the districts of one of Rwanda's five provinces.
type Province struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

var provinces = []Province{
	{Name: "Kigali City", Districts: []string{"Gasabo", "Kicukiro", "Nyarugenge"}},
	{Name: "Eastern Province", Districts: []string{"Bugesera", "Gatsibo", "Kayonza", "Kirehe", "Ngoma", "Nyagatare", "Rwamagana"}},
	{Name: "Western Province", Districts: []string{"Karongi", "Ngororero", "Nyabihu", "Nyamasheke", "Rubavu", "Rusizi", "Rutsiro"}},
	{Name: "Northern Province", Districts: []string{"Burera", "Gakenke", "Gicumbi", "Musanze", "Rulindo"}},
	{Name: "Southern Province", Districts: []string{"Gisagara", "Huye", "Kamonyi", "Muhanga", "Nyamagabe", "Nyanza", "Nyaruguru", "Ruhango"}},
}

// districtProvince maps each district to the province that contains it.
var districtProvince = func() map[string]string {
	m := make(map[string]string)
	for _, p := range provinces {
		for _, d := range p.Districts {
			m[d] = p.Name
		}
	}
	return m
}()

// Provinces returns the provinces with their districts, in canonical order.
func Provinces() []Province {
	out := make([]Province, len(provinces))
	for i, p := range provinces {
		out[i] = Province{Name: p.Name, Districts: slices.Clone(p.Districts)}
	}
	return out
}

// DistrictsOf returns the districts of a province, or nil if the province is unknown.
func DistrictsOf(province string) []string {
	for _, p := range provinces {
		if p.Name == province {
			return slices.Clone(p.Districts)
		}
	}
	return nil
}

// AllDistricts returns every district sorted alphabetically.
func AllDistricts() []string {
	out := make([]string, 0, len(districtProvince))
	for d := range districtProvince {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// ProvinceOfDistrict returns the province containing district.
func ProvinceOfDistrict(district string) (string, bool) {
	p, ok := districtProvince[district]
	return p, ok
}

// IsDistrict reports whether name is a known district.
func IsDistrict(name string) bool {
	_, ok := districtProvince[name]
	return ok
}

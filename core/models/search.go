package models

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a search hit. Lower distances are better matches.
type Match struct {
	Patient  *Patient
	Distance int
}

// SearchPatients finds the patients whose name, surname, DNI or SNS code
// match every word of query within maxDistance edits. A word that is a
// prefix of a field matches exactly. An empty query matches everyone.
func SearchPatients(patients []*Patient, query string, maxDistance int) []Match {
	words := strings.Fields(strings.ToLower(query))
	var out []Match
	for _, p := range patients {
		if len(words) == 0 {
			out = append(out, Match{Patient: p})
			continue
		}
		fields := searchFields(p)
		worst := 0
		for _, w := range words {
			worst = max(worst, bestDistance(w, fields))
			if worst > maxDistance {
				break
			}
		}
		if worst <= maxDistance {
			out = append(out, Match{Patient: p, Distance: worst})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Patient.FullName() < out[j].Patient.FullName()
	})
	return out
}

func searchFields(p *Patient) []string {
	fields := strings.Fields(strings.ToLower(p.General.Name + " " + p.General.Surname))
	if dni := p.General.DNI.String(); dni != "" {
		fields = append(fields, strings.ToLower(dni))
	}
	return append(fields, strconv.FormatInt(p.General.SNSCode, 10))
}

func bestDistance(word string, fields []string) int {
	best := -1
	for _, f := range fields {
		d := 0
		if !strings.HasPrefix(f, word) {
			d = levenshtein.ComputeDistance(word, f)
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

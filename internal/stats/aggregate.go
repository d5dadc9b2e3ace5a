package stats

import (
	"sort"
	"strings"
	"time"

	"backend-sendit/internal/shared/grade"
)

const (
	dayFormat   = "2006-01-02"
	monthFormat = "Jan 2006"

	fallbackStyle     = "redpoint"
	fallbackClimbType = "unknown"
	fallbackAreaName  = "Unknown"
)

// Aggregate derives the full progress payload from a user's ascent
// history. Pure and idempotent: no I/O, input order does not matter,
// malformed grades fall back to 0 instead of failing the whole report.
func Aggregate(climbs []Climb) Progress {
	p := emptyProgress()
	if len(climbs) == 0 {
		return p
	}

	total := len(climbs)
	p.TotalClimbs = total

	byDay := map[string][]Climb{}
	for _, c := range climbs {
		day := c.DateClimbed.Format(dayFormat)
		byDay[day] = append(byDay[day], c)
	}

	// "Sessions" here means distinct climbing days, not session rows.
	p.TotalSessions = len(byDay)
	if p.TotalSessions > 0 {
		p.AvgClimbsPerSession = float64(total) / float64(p.TotalSessions)
	}

	sent, flashed, onsighted := 0, 0, 0
	for _, c := range climbs {
		if c.Attempts > 0 {
			sent++
		}
		if c.Style != nil && *c.Style == "flash" {
			flashed++
		}
		if c.Style != nil && *c.Style == "onsight" {
			onsighted++
		}
	}
	// Attempts are always >= 1, so this is 100 whenever anything was
	// logged. Kept as recorded until the send definition is settled.
	p.SendRate = float64(sent) / float64(total) * 100
	p.FlashRate = float64(flashed) / float64(total) * 100
	p.OnsightRate = float64(onsighted) / float64(total) * 100

	p.OutdoorVsIndoor = venueSplit(climbs)
	p.HardestGrades = hardestGrades(climbs)
	p.MonthlyVolume = monthlyVolume(byDay)
	p.MonthlyTrends = monthlyTrends(climbs)
	p.GradeProgression = gradeProgression(byDay)
	p.GradePyramid = gradePyramid(climbs)
	p.AttemptsDistribution = attemptsDistribution(climbs)
	p.StyleDistribution = styleDistribution(climbs, total)
	p.FavoriteGrades = favoriteGrades(climbs)

	return p
}

func emptyProgress() Progress {
	return Progress{
		HardestGrades:        map[string]string{},
		MonthlyVolume:        []DayVolume{},
		MonthlyTrends:        []MonthTrend{},
		GradeProgression:     []ProgressionPoint{},
		GradePyramid:         []PyramidEntry{},
		AttemptsDistribution: map[string]int{},
		StyleDistribution:    []StyleCount{},
		FavoriteGrades:       []GradeCount{},
	}
}

// venueSplit classifies by area name alone: anything containing "gym"
// counts as indoor. There is no venue field on routes.
func venueSplit(climbs []Climb) VenueSplit {
	var split VenueSplit
	for _, c := range climbs {
		area := c.AreaName
		if area == "" {
			area = fallbackAreaName
		}
		if strings.Contains(strings.ToLower(area), "gym") {
			split.Indoor++
		} else {
			split.Outdoor++
		}
	}
	return split
}

// hardestGrades keeps the lexicographically largest grade string per
// climb type. Only meaningful within a single grading system where
// string order tracks difficulty for the grades actually logged.
func hardestGrades(climbs []Climb) map[string]string {
	hardest := map[string]string{}
	for _, c := range climbs {
		if c.Grade == "" {
			continue
		}
		climbType := c.ClimbType
		if climbType == "" {
			climbType = fallbackClimbType
		}
		if cur, ok := hardest[climbType]; !ok || c.Grade > cur {
			hardest[climbType] = c.Grade
		}
	}
	return hardest
}

func monthlyVolume(byDay map[string][]Climb) []DayVolume {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	volume := make([]DayVolume, 0, len(days))
	for _, day := range days {
		volume = append(volume, DayVolume{
			Date:     day,
			Climbs:   len(byDay[day]),
			Sessions: 1,
		})
	}
	return volume
}

func monthlyTrends(climbs []Climb) []MonthTrend {
	counts := map[string]int{}
	for _, c := range climbs {
		counts[c.DateClimbed.Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > 12 {
		months = months[len(months)-12:]
	}

	trends := make([]MonthTrend, 0, len(months))
	for _, m := range months {
		parsed, err := time.Parse("2006-01", m)
		display := m
		if err == nil {
			display = parsed.Format(monthFormat)
		}
		trends = append(trends, MonthTrend{
			DisplayMonth: display,
			Climbs:       counts[m],
			AvgGrade:     0, // not populated yet, charts ignore it
		})
	}
	return trends
}

func gradeProgression(byDay map[string][]Climb) []ProgressionPoint {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]ProgressionPoint, 0, len(days))
	for _, day := range days {
		var hardest, sum float64
		for _, c := range byDay[day] {
			v := grade.NaiveNumeric(c.Grade)
			if v > hardest {
				hardest = v
			}
			sum += v
		}
		points = append(points, ProgressionPoint{
			Date:         day,
			HardestGrade: hardest,
			AvgGrade:     sum / float64(len(byDay[day])),
		})
	}
	return points
}

func gradePyramid(climbs []Climb) []PyramidEntry {
	type key struct {
		grade     string
		climbType string
	}
	counts := map[key]int{}
	var order []key
	for _, c := range climbs {
		climbType := c.ClimbType
		if climbType == "" {
			climbType = fallbackClimbType
		}
		k := key{grade: c.Grade, climbType: climbType}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	pyramid := make([]PyramidEntry, 0, len(order))
	for _, k := range order {
		pyramid = append(pyramid, PyramidEntry{
			Grade:     k.grade,
			ClimbType: k.climbType,
			Count:     counts[k],
		})
	}
	return pyramid
}

func attemptsDistribution(climbs []Climb) map[string]int {
	buckets := map[string]int{"1": 0, "2-3": 0, "4-5": 0, "6+": 0}
	for _, c := range climbs {
		switch {
		case c.Attempts <= 1:
			buckets["1"]++
		case c.Attempts <= 3:
			buckets["2-3"]++
		case c.Attempts <= 5:
			buckets["4-5"]++
		default:
			buckets["6+"]++
		}
	}
	return buckets
}

func styleDistribution(climbs []Climb, total int) []StyleCount {
	counts := map[string]int{}
	var order []string
	for _, c := range climbs {
		style := fallbackStyle
		if c.Style != nil && *c.Style != "" {
			style = *c.Style
		}
		if _, seen := counts[style]; !seen {
			order = append(order, style)
		}
		counts[style]++
	}

	dist := make([]StyleCount, 0, len(order))
	for _, style := range order {
		dist = append(dist, StyleCount{
			Style:      style,
			Count:      counts[style],
			Percentage: float64(counts[style]) / float64(total) * 100,
		})
	}
	return dist
}

// favoriteGrades returns the top three grades by volume. Ties keep
// first-logged order.
func favoriteGrades(climbs []Climb) []GradeCount {
	counts := map[string]int{}
	var order []string
	for _, c := range climbs {
		if c.Grade == "" {
			continue
		}
		if _, seen := counts[c.Grade]; !seen {
			order = append(order, c.Grade)
		}
		counts[c.Grade]++
	}

	favorites := make([]GradeCount, 0, len(order))
	for _, g := range order {
		favorites = append(favorites, GradeCount{Grade: g, Count: counts[g]})
	}
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].Count > favorites[j].Count
	})
	if len(favorites) > 3 {
		favorites = favorites[:3]
	}
	return favorites
}

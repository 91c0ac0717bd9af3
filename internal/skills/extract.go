package skills

import (
	"github.com/LAWSA07/ProFel/internal/types"
)

// Extraction is the only place that branches on raw record shape. Skills may
// arrive as plain name strings, as {name} / {name, importance} / {name, level}
// objects, or nested under a "data" key; everything downstream sees only
// Skill{Name, Weight}.

// ExtractProfileSkills pulls a deduplicated skill list out of a raw profile
// record. Candidate weights come from the skill's level; presence-only skills
// count as a full match. Technologies listed on projects are appended when not
// already present by normalized name.
func ExtractProfileSkills(profile types.RawRecord) []types.Skill {
	if profile == nil {
		return nil
	}

	out := make([]types.Skill, 0)
	seen := make(map[string]bool)

	add := func(skill types.Skill) {
		key := Normalize(skill.Name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		skill.Weight = types.ClampWeight(skill.Weight)
		out = append(out, skill)
	}

	for _, raw := range rawList(profile["skills"]) {
		if skill, ok := candidateSkill(raw); ok {
			add(skill)
		}
	}

	// Records fetched from a store nest the platform payload under "data".
	if data := rawRecord(profile["data"]); data != nil {
		for _, raw := range rawList(data["skills"]) {
			if skill, ok := candidateSkill(raw); ok {
				add(skill)
			}
		}
	}

	for _, raw := range rawList(profile["projects"]) {
		project := rawRecord(raw)
		if project == nil {
			continue
		}
		for _, tech := range rawList(project["technologies"]) {
			if name, ok := tech.(string); ok && name != "" {
				add(types.Skill{Name: name, Weight: types.LevelFull})
			}
		}
	}

	return out
}

// ExtractJobSkills pulls a deduplicated requirement list out of a raw job
// record. Missing importance defaults to 0.5.
func ExtractJobSkills(job types.RawRecord) []types.Skill {
	if job == nil {
		return nil
	}

	raws := rawList(job["requirements"])
	if len(raws) == 0 {
		raws = rawList(job["skills"])
	}

	out := make([]types.Skill, 0, len(raws))
	seen := make(map[string]bool)

	for _, raw := range raws {
		skill, ok := jobSkill(raw)
		if !ok {
			continue
		}
		key := Normalize(skill.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		skill.Weight = types.ClampWeight(skill.Weight)
		out = append(out, skill)
	}

	return out
}

// candidateSkill converts one raw skills entry into a candidate Skill.
func candidateSkill(raw any) (types.Skill, bool) {
	if name, ok := raw.(string); ok {
		if name == "" {
			return types.Skill{}, false
		}
		return types.Skill{Name: name, Weight: types.LevelFull}, true
	}

	rec := rawRecord(raw)
	if rec == nil {
		return types.Skill{}, false
	}
	name := rawString(rec["name"])
	if name == "" {
		return types.Skill{}, false
	}
	if level := rawString(rec["level"]); level != "" {
		return types.Skill{Name: name, Weight: types.WeightForLevel(level)}, true
	}
	if weight, ok := rawFloat(rec["weight"]); ok {
		return types.Skill{Name: name, Weight: weight}, true
	}
	return types.Skill{Name: name, Weight: types.LevelFull}, true
}

// jobSkill converts one raw requirements entry into a weighted requirement.
func jobSkill(raw any) (types.Skill, bool) {
	if name, ok := raw.(string); ok {
		if name == "" {
			return types.Skill{}, false
		}
		return types.Skill{Name: name, Weight: types.DefaultImportance}, true
	}

	rec := rawRecord(raw)
	if rec == nil {
		return types.Skill{}, false
	}
	name := rawString(rec["name"])
	if name == "" {
		name = rawString(rec["skill"])
	}
	if name == "" {
		return types.Skill{}, false
	}
	if importance, ok := rawFloat(rec["importance"]); ok {
		return types.Skill{Name: name, Weight: importance}, true
	}
	if weight, ok := rawFloat(rec["weight"]); ok {
		return types.Skill{Name: name, Weight: weight}, true
	}
	return types.Skill{Name: name, Weight: types.DefaultImportance}, true
}

func rawList(v any) []any {
	switch list := v.(type) {
	case []any:
		return list
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

func rawRecord(v any) types.RawRecord {
	switch rec := v.(type) {
	case map[string]any:
		return rec
	case types.RawRecord:
		return rec
	default:
		return nil
	}
}

func rawString(v any) string {
	s, _ := v.(string)
	return s
}

func rawFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

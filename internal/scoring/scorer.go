// Package scoring produces match results and combined scores for
// profile x job comparisons. The fine-grained path runs the weighted
// skill matcher; the coarse path blends plain skill overlap with
// semantic vector similarity.
package scoring

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/LAWSA07/ProFel/internal/aggregate"
	"github.com/LAWSA07/ProFel/internal/embedding"
	"github.com/LAWSA07/ProFel/internal/matching"
	"github.com/LAWSA07/ProFel/internal/skills"
	"github.com/LAWSA07/ProFel/internal/store"
	"github.com/LAWSA07/ProFel/internal/types"
)

// Weights controls how skill overlap and vector similarity blend into the
// coarse combined score. They should sum to 1.
type Weights struct {
	SkillOverlap     float64
	VectorSimilarity float64
}

// DefaultWeights favors skill overlap over semantic similarity.
func DefaultWeights() Weights {
	return Weights{SkillOverlap: 0.6, VectorSimilarity: 0.4}
}

// neutralScore is returned when a comparison cannot be computed at all.
const neutralScore = 0.5

// defaultExperienceMatch is a placeholder until experience data is modeled
// well enough to score. TODO: derive from years overlap once LinkedIn
// experience records carry date ranges.
const defaultExperienceMatch = 0.7

// Scorer runs profile x job comparisons. The embedder and store are both
// optional: without an embedder, vector similarity is zero; without a store,
// results are not persisted.
type Scorer struct {
	embedder embedding.Embedder
	store    store.Store
	matchCfg matching.Config
	weights  Weights
	log      zerolog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithEmbedder attaches a text embedder for vector similarity.
func WithEmbedder(e embedding.Embedder) Option {
	return func(s *Scorer) { s.embedder = e }
}

// WithStore attaches a store for opportunistic persistence of results.
func WithStore(st store.Store) Option {
	return func(s *Scorer) { s.store = st }
}

// WithMatchConfig overrides the weighted matcher configuration.
func WithMatchConfig(cfg matching.Config) Option {
	return func(s *Scorer) { s.matchCfg = cfg }
}

// WithWeights overrides the combined-score blend weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// WithLogger sets the scorer logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scorer) { s.log = log }
}

// NewScorer builds a Scorer with default matcher config and blend weights.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		matchCfg: matching.DefaultConfig(),
		weights:  DefaultWeights(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score runs the weighted matcher for one profile against one job and
// returns the full match result. It never fails: when skill extraction
// yields nothing the result simply reports every requirement missing.
func (s *Scorer) Score(ctx context.Context, profile, job types.RawRecord) types.MatchResult {
	candidateSkills := skills.ExtractProfileSkills(profile)
	jobSkills := skills.ExtractJobSkills(job)

	outcome := matching.Match(candidateSkills, jobSkills, s.matchCfg)

	result := types.MatchResult{
		ProfileName:    profileName(profile),
		JobTitle:       recordString(job, "title"),
		Company:        recordString(job, "company"),
		OverallMatch:   outcome.OverallMatch,
		SkillMatches:   outcome.SkillMatches,
		MissingSkills:  outcome.MissingSkills,
		Strengths:      outcome.Strengths,
		Recommendation: matching.Recommendation(outcome.OverallMatch),
	}

	s.persistMatch(ctx, profile, job, result)
	return result
}

// MatchProfileToJobs scores one profile against every job and returns the
// matches sorted by overall match, best first. Jobs are scored concurrently;
// ties keep the input job order.
func (s *Scorer) MatchProfileToJobs(ctx context.Context, profile types.RawRecord, jobRecords []types.RawRecord) types.ProfileMatches {
	matches := make([]types.RankedMatch, len(jobRecords))

	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobRecords {
		g.Go(func() error {
			result := s.Score(gctx, profile, job)
			matches[i] = types.RankedMatch{
				JobTitle:       result.JobTitle,
				Company:        result.Company,
				OverallMatch:   result.OverallMatch,
				Recommendation: result.Recommendation,
				Result:         result,
			}
			return nil
		})
	}
	// Score never returns an error, so Wait cannot fail.
	_ = g.Wait()

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallMatch > matches[j].OverallMatch
	})

	return types.ProfileMatches{
		ProfileName: profileName(profile),
		Matches:     matches,
	}
}

// BatchMatch scores every profile against every job. Profiles are processed
// concurrently; the output preserves profile input order.
func (s *Scorer) BatchMatch(ctx context.Context, profiles, jobRecords []types.RawRecord) []types.ProfileMatches {
	out := make([]types.ProfileMatches, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	for i, profile := range profiles {
		g.Go(func() error {
			out[i] = s.MatchProfileToJobs(gctx, profile, jobRecords)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// CombinedScore produces the coarse blended score for one profile against one
// job: plain skill overlap weighted against embedding cosine similarity.
// Embedding failures degrade to zero similarity; a profile or job with no
// skills at all degrades to the neutral score with the cause attached.
func (s *Scorer) CombinedScore(ctx context.Context, profile, job types.RawRecord) types.MatchScore {
	candidateSkills := skills.ExtractProfileSkills(profile)
	jobSkills := skills.ExtractJobSkills(job)

	if len(jobSkills) == 0 {
		return types.MatchScore{
			OverallScore:    neutralScore,
			ExperienceMatch: defaultExperienceMatch,
			Error:           "job has no requirements to match against",
		}
	}

	matched, missing, pct := matching.Overlap(candidateSkills, jobSkills)
	similarity := s.similarity(ctx, profileText(profile), jobText(job))

	overall := s.weights.SkillOverlap*pct + s.weights.VectorSimilarity*similarity

	return types.MatchScore{
		OverallScore:     overall,
		SkillMatch:       pct,
		VectorSimilarity: similarity,
		ExperienceMatch:  defaultExperienceMatch,
		SkillsMatched:    matched,
		SkillsMissing:    missing,
		MatchDetails: &types.MatchDetails{
			ProfileSkillsCount:  len(candidateSkills),
			JobSkillsCount:      len(jobSkills),
			MatchingSkillsCount: len(matched),
		},
	}
}

// CombinedProfiles merges multi-platform profiles into one candidate and
// scores the union against the job, reporting how much each platform
// contributed to the overall score.
func (s *Scorer) CombinedProfiles(ctx context.Context, profiles []types.PlatformProfile, job types.RawRecord) types.MatchScore {
	if len(profiles) == 0 {
		return types.MatchScore{
			OverallScore:    neutralScore,
			ExperienceMatch: defaultExperienceMatch,
			Error:           "no platform profiles provided",
		}
	}

	combined := aggregate.Combine(profiles)

	candidate := types.RawRecord{
		"name":   combined.Name,
		"skills": skillRecords(combined.Skills),
	}
	score := s.CombinedScore(ctx, candidate, job)

	score.ProfileName = combined.Name
	score.Platforms = make([]string, 0, len(profiles))
	for _, p := range profiles {
		score.Platforms = append(score.Platforms, p.Platform)
	}
	score.PlatformContributions = platformContributions(score.OverallScore, score.Platforms)

	return score
}

// platformContributions attributes caps of the overall score to each source
// platform. GitHub carries the most signal, then LinkedIn, then LeetCode.
func platformContributions(overall float64, platforms []string) map[string]float64 {
	contributions := make(map[string]float64, len(platforms))
	for _, platform := range platforms {
		switch platform {
		case types.PlatformGitHub:
			contributions[platform] = min(0.6, overall*0.5)
		case types.PlatformLinkedIn:
			contributions[platform] = min(0.4, overall*0.3)
		case types.PlatformLeetCode:
			contributions[platform] = min(0.3, overall*0.2)
		default:
			contributions[platform] = min(0.2, overall*0.1)
		}
	}
	return contributions
}

// similarity embeds both texts and returns their cosine similarity. Any
// embedding failure is logged and scored as zero rather than propagated.
func (s *Scorer) similarity(ctx context.Context, profileText, jobText string) float64 {
	if s.embedder == nil || profileText == "" || jobText == "" {
		return 0
	}

	profileVec, err := s.embedder.Embed(ctx, profileText)
	if err != nil {
		s.log.Warn().Err(err).Msg("profile embedding failed, scoring similarity as zero")
		return 0
	}
	jobVec, err := s.embedder.Embed(ctx, jobText)
	if err != nil {
		s.log.Warn().Err(err).Msg("job embedding failed, scoring similarity as zero")
		return 0
	}

	return embedding.CosineSimilarity(profileVec, jobVec)
}

// persistMatch stores the profile, job, and match result when a store is
// configured. Persistence failures are logged and never affect the result.
func (s *Scorer) persistMatch(ctx context.Context, profile, job types.RawRecord, result types.MatchResult) {
	if s.store == nil {
		return
	}

	profileID, err := s.store.StoreProfile(ctx,
		profileName(profile),
		recordString(profile, "platform"),
		profile,
		normalizedNames(skills.ExtractProfileSkills(profile)),
		nil,
	)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to persist profile")
		return
	}

	jobID, err := s.store.StoreJob(ctx,
		result.JobTitle,
		result.Company,
		recordString(job, "description"),
		normalizedNames(skills.ExtractJobSkills(job)),
		nil,
	)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to persist job")
		return
	}

	overlap := store.SkillOverlap{
		MatchingSkills: result.Strengths,
		Percentage:     result.OverallMatch,
	}
	if err := s.store.StoreMatch(ctx, profileID, jobID, result.OverallMatch/100, overlap); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist match")
	}
}

// SaveJob persists a built job posting. The returned id is zero when no
// store is configured.
func (s *Scorer) SaveJob(ctx context.Context, job types.Job) (int64, error) {
	if s.store == nil {
		return 0, nil
	}
	return s.store.StoreJob(ctx, job.Title, job.Company, job.Description,
		normalizedNames(job.Requirements), nil)
}

// profileText flattens the descriptive parts of a profile into one blob for
// embedding: name, bio, repository descriptions and languages.
func profileText(profile types.RawRecord) string {
	var parts []string

	for _, key := range []string{"name", "bio", "summary", "headline"} {
		if v := recordString(profile, key); v != "" {
			parts = append(parts, v)
		}
	}
	for _, skill := range skills.ExtractProfileSkills(profile) {
		parts = append(parts, skill.Name)
	}
	for _, raw := range recordList(profile, "repositories") {
		if desc := recordString(raw, "description"); desc != "" {
			parts = append(parts, desc)
		}
		if lang := recordString(raw, "language"); lang != "" {
			parts = append(parts, lang)
		}
	}

	return strings.Join(parts, " ")
}

// jobText flattens a job posting into one blob for embedding.
func jobText(job types.RawRecord) string {
	var parts []string

	for _, key := range []string{"title", "company", "description"} {
		if v := recordString(job, key); v != "" {
			parts = append(parts, v)
		}
	}
	for _, skill := range skills.ExtractJobSkills(job) {
		parts = append(parts, skill.Name)
	}

	return strings.Join(parts, " ")
}

// profileName resolves a display name from a profile record, preferring the
// human name over the platform username.
func profileName(profile types.RawRecord) string {
	if name := recordString(profile, "name"); name != "" {
		return name
	}
	if username := recordString(profile, "username"); username != "" {
		return username
	}
	return "unknown"
}

func recordString(record types.RawRecord, key string) string {
	if s, ok := record[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func recordList(record types.RawRecord, key string) []types.RawRecord {
	raw, ok := record[key].([]any)
	if !ok {
		return nil
	}
	out := make([]types.RawRecord, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case types.RawRecord:
			out = append(out, v)
		case map[string]any:
			out = append(out, types.RawRecord(v))
		}
	}
	return out
}

func normalizedNames(skillList []types.Skill) []string {
	names := make([]string, 0, len(skillList))
	for _, skill := range skillList {
		if n := skills.Normalize(skill.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func skillRecords(skillList []types.Skill) []any {
	out := make([]any, 0, len(skillList))
	for _, skill := range skillList {
		out = append(out, map[string]any{
			"name":   skill.Name,
			"weight": skill.Weight,
		})
	}
	return out
}

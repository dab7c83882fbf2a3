package config

import (
	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/logging"
	"github.com/arthur-debert/dirkeep/pkg/matcher"
	"github.com/arthur-debert/dirkeep/pkg/paths"
	"github.com/arthur-debert/dirkeep/pkg/rules"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// BuildRuleSet compiles the raw configuration into the validated rule
// model. All paths come out absolute and variable-expanded, all
// patterns compiled. Any failure here is fatal: a rule set either
// builds completely or not at all.
func BuildRuleSet(cfg *Config) (*rules.RuleSet, error) {
	logger := logging.GetLogger("config.build")

	rs := &rules.RuleSet{}

	for rawPath, dirCfg := range cfg.Dirs {
		path, err := paths.Expand(rawPath)
		if err != nil {
			return nil, err
		}

		allowedDirs, err := compileSet(dirCfg.AllowedDirs, rawPath)
		if err != nil {
			return nil, err
		}
		allowedFiles, err := compileSet(dirCfg.AllowedFiles, rawPath)
		if err != nil {
			return nil, err
		}
		ignore, err := compileMatchers(dirCfg.RecursiveIgnoreChildren, false, rawPath)
		if err != nil {
			return nil, err
		}

		rs.DirRules = append(rs.DirRules, rules.DirRule{
			Path:                    path,
			AllowedDirs:             allowedDirs,
			AllowedFiles:            allowedFiles,
			Recursive:               dirCfg.Recursive,
			RecursiveIgnoreChildren: ignore,
		})
	}

	for _, ruleCfg := range cfg.AutoMove.Rules {
		parent, err := paths.Expand(ruleCfg.Parent)
		if err != nil {
			return nil, err
		}
		to, err := paths.Expand(ruleCfg.To)
		if err != nil {
			return nil, err
		}

		var toScript string
		if ruleCfg.ToScript != "" {
			toScript, err = paths.ExpandRelativeTo(ruleCfg.ToScript, cfg.ConfigDir)
			if err != nil {
				return nil, err
			}
		}

		match, err := compileMatchers(ruleCfg.Match, true, ruleCfg.Parent)
		if err != nil {
			return nil, err
		}

		rs.MoveRules = append(rs.MoveRules, rules.MoveRule{
			Name:     ruleCfg.Name,
			Parent:   parent,
			Match:    match,
			To:       to,
			ToScript: toScript,
		})
	}

	rs.SortForDisplay()

	logger.Debug().
		Int("dirRules", len(rs.DirRules)).
		Int("moveRules", len(rs.MoveRules)).
		Msg("Rule set built")

	return rs, nil
}

// compileSet turns an optional raw matcher list into a *matcher.Set,
// preserving the three-state semantics: nil stays nil (pass-through),
// a present list becomes a set even when empty (deny-all).
func compileSet(raw *[]RawMatcher, where string) (*matcher.Set, error) {
	if raw == nil {
		return nil, nil
	}
	compiled, err := compileMatchers(*raw, false, where)
	if err != nil {
		return nil, err
	}
	return &matcher.Set{Matchers: compiled}, nil
}

func compileMatchers(raw []RawMatcher, allowType bool, where string) ([]matcher.Matcher, error) {
	var out []matcher.Matcher
	for _, r := range raw {
		m, err := compileMatcher(r, allowType, where)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func compileMatcher(raw RawMatcher, allowType bool, where string) (matcher.Matcher, error) {
	set := 0
	for _, v := range []string{raw.Name, raw.Ext, raw.Pattern, raw.Type} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return matcher.Matcher{}, errors.Newf(errors.ErrConfigInvalid,
			"matcher in %q must set exactly one of name, ext, pattern, type", where)
	}

	switch {
	case raw.Name != "":
		return matcher.NewName(raw.Name), nil
	case raw.Ext != "":
		return matcher.NewExtension(raw.Ext), nil
	case raw.Pattern != "":
		return matcher.NewPattern(raw.Pattern)
	default:
		if !allowType {
			return matcher.Matcher{}, errors.Newf(errors.ErrConfigInvalid,
				"type matcher in %q is only valid in automove match lists", where)
		}
		switch raw.Type {
		case "file":
			return matcher.NewEntryType(types.KindFile), nil
		case "directory", "dir":
			return matcher.NewEntryType(types.KindDirectory), nil
		default:
			return matcher.Matcher{}, errors.Newf(errors.ErrConfigInvalid,
				"unknown entry type %q in %q (want file or directory)", raw.Type, where)
		}
	}
}

package job

import (
	"regexp"
	"strings"

	"github.com/jobforge/jobforge/internal/errors"
)

var (
	// goalMacros matches {token} occurrences together with the optional $
	// of an already expanded ${token} reference.
	goalMacros    = regexp.MustCompile(`\$?\{[^{}]+\}`)
	localRepoArg  = regexp.MustCompile(`-Dmaven\.repo\.local=\S+`)
	localRepoFlag = "-Dmaven.repo.local="
)

func expandGoalMacros(goals string) string {
	return goalMacros.ReplaceAllStringFunc(goals, func(macro string) string {
		if strings.HasPrefix(macro, "$") {
			return macro
		}
		return "$" + macro
	})
}

// RewriteMavenGoals normalizes the goals line of a resolved maven job:
// bare {token} macros become ${token}, and when a local repository is
// declared a -Dmaven.repo.local argument pointing at the computed path is
// injected or, when already present, repointed. Jobs building against a
// private repository must not declare a local one.
func (j *Spec) RewriteMavenGoals(home string) error {
	if j.JobType == nil || *j.JobType != JobTypeMaven {
		return nil
	}

	if strings.TrimSpace(strVal(j.MavenGoals)) == "" {
		return errors.InvalidArgument(EntityJob, "job "+j.ID+": maven goals are empty")
	}
	base := strVal(j.LocalRepoBase)
	leaf := strVal(j.LocalRepo)
	if boolVal(j.PrivateRepository) && (base != "" || leaf != "") {
		return errors.InvalidArgument(EntityJob,
			"job "+j.ID+": privateRepository cannot be combined with localRepoBase or localRepo")
	}

	goals := expandGoalMacros(strVal(j.MavenGoals))

	if base != "" || leaf != "" {
		if base == "" {
			base = home + "/.m2/repository"
		}
		if leaf == "" {
			leaf = "."
		}
		j.LocalRepoPath = strings.ReplaceAll(base+"/"+leaf, `\`, "/")
		if loc := localRepoArg.FindStringIndex(goals); loc != nil {
			goals = goals[:loc[0]] + localRepoFlag + j.LocalRepoPath + goals[loc[1]:]
		} else {
			goals += " " + localRepoFlag + `"` + j.LocalRepoPath + `"`
		}
	}

	j.MavenGoals = &goals
	return nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolVal(b *bool) bool {
	return b != nil && *b
}

package job_test

import (
	"github.com/jobforge/jobforge/job"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func jobTypePtr(t job.JobType) *job.JobType { return &t }

func scmTypePtr(t job.SCMType) *job.SCMType { return &t }

func postStepsPtr(r job.PostStepsResult) *job.PostStepsResult { return &r }

// mustNew builds a spec from an identifier known to be legal.
func mustNew(id string) *job.Spec {
	spec, err := job.New(id)
	if err != nil {
		panic(err)
	}
	return spec
}

// resolvedMaven returns a fully materialized maven spec that passes
// validation, for tests that break one field at a time.
func resolvedMaven(id string) *job.Spec {
	spec := mustNew(id)
	if err := spec.MergeFrom(job.NewBaseSpec()); err != nil {
		panic(err)
	}
	return spec
}

// resolvedFree returns a fully materialized free style spec with a single
// shell task.
func resolvedFree(id string) *job.Spec {
	spec := mustNew(id)
	spec.JobType = jobTypePtr(job.JobTypeFree)
	spec.Tasks = []job.Step{
		{Kind: job.StepKindShell, Command: "make all"},
	}
	if err := spec.MergeFrom(job.NewBaseSpec()); err != nil {
		panic(err)
	}
	return spec
}

package planner

import (
	"context"
	"errors"
	"math/big"

	"factorionlib/numeric"

	"golang.org/x/sync/errgroup"
)

// Execute resolves a single CalculationJob tree, innermost base first,
// matching spec §4.2's depth-first execution order. It never returns an error
// for conditions the spec says must be recovered locally — those are recorded
// on the returned Calculation's Unevaluated fields instead; the error return
// is reserved for a nil job, which is a caller bug.
func Execute(job *CalculationJob, consts *Consts) (Calculation, error) {
	if job == nil {
		return Calculation{}, errors.New("planner: nil job")
	}
	return executeJob(job, consts), nil
}

func executeJob(job *CalculationJob, consts *Consts) Calculation {
	var innermost numeric.Number
	var steps []Step
	var current numeric.Number

	if job.Base.IsNumber {
		if job.Base.TooBig {
			steps = append(steps, Step{Level: job.Level, IsSubfactorial: job.IsSubfactorial})
			return Calculation{Steps: steps, Unevaluated: true, UnevaluatedReason: "literal too large to construct", Literal: job.Base.Literal}
		}
		innermost = job.Base.Value
		current = job.Base.Value
	} else {
		inner := executeJob(job.Base.Job, consts)
		innermost = inner.Value
		steps = append(steps, inner.Steps...)
		current = inner.Result
		if inner.Unevaluated {
			return Calculation{Value: innermost, Steps: steps, Result: inner.Result, Unevaluated: true, UnevaluatedReason: inner.UnevaluatedReason, Literal: inner.Literal}
		}
	}

	negative := job.NegativeDepth%2 == 1
	result, reason, ok := applyOperator(current, *job, consts)
	steps = append(steps, Step{Level: job.Level, IsSubfactorial: job.IsSubfactorial})
	if !ok {
		return Calculation{Value: innermost, Steps: steps, Result: current, Unevaluated: true, UnevaluatedReason: reason}
	}
	result = result.WithNegative(negative)
	return Calculation{Value: innermost, Steps: steps, Result: result}
}

// ExecuteAll resolves every top-level job. When consts.ParallelJobs is set,
// sibling jobs (which are, by construction, independent — the planner never
// shares mutable state across CalculationJobs) are executed concurrently via
// errgroup, matching spec §5's "a host may run many pipelines on a thread
// pool" posture applied within a single pipeline invocation. Order is always
// preserved in the returned slice regardless of execution order.
func ExecuteAll(ctx context.Context, jobs []*CalculationJob, consts *Consts) ([]Calculation, error) {
	results := make([]Calculation, len(jobs))
	if !consts.ParallelJobs || len(jobs) < 2 {
		for i, job := range jobs {
			results[i] = executeJob(job, consts)
		}
		return results, nil
	}

	g, _ := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = executeJob(job, consts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// applyOperator dispatches a single operator application to the numeric
// engine, implementing spec §4.2's five-rule regime ladder.
func applyOperator(input numeric.Number, job CalculationJob, consts *Consts) (result numeric.Number, reason string, ok bool) {
	switch input.Kind {
	case numeric.Exact:
		return applyToExact(input.ExactVal, job, consts)
	case numeric.Float:
		return applyToFloat(input.FloatVal, job, consts), "", true
	case numeric.ApproximateDigits, numeric.ApproximateDigitsTower:
		return numeric.CollapseOrExtendTower(input, consts.MaxTowerHeight), "", true
	case numeric.Tetration:
		return numeric.NewTetration(input.Height + 1), "", true
	default:
		return numeric.Number{}, "unrecognized input regime", false
	}
}

func applyToExact(n *big.Int, job CalculationJob, consts *Consts) (numeric.Number, string, bool) {
	if job.IsSubfactorial {
		return applyFamily(n, consts.UpperSubfactorialLimit, consts.UpperApproximationLimit, consts,
			func(n int64) *big.Int { return numeric.ExactSubfactorial(n) },
			func(n *big.Int, prec uint) numeric.Number { return numeric.ApproximateSubfactorial(n, prec) },
			func(n *big.Int, prec uint) *big.Int { return numeric.DigitsFactorial(n, prec) },
		)
	}
	if job.IsTermialFamily() {
		k := int64(1)
		if job.Level < 0 {
			k = job.MultiTermialDegree()
		}
		return applyFamily(n, consts.UpperTermialLimit, consts.UpperTermialApproximationLimit, consts,
			func(n int64) *big.Int { return numeric.ExactMultiTermial(n, k) },
			func(n *big.Int, prec uint) numeric.Number { return numeric.ApproximateMultiTermial(n, k, prec) },
			func(n *big.Int, prec uint) *big.Int { return numeric.DigitsTermial(n) },
		)
	}
	k := job.MultifactorialDegree()
	if k < 1 {
		k = 1
	}
	return applyFamily(n, consts.UpperCalculationLimit, consts.UpperApproximationLimit, consts,
		func(n int64) *big.Int { return numeric.ExactMultifactorial(n, k) },
		func(n *big.Int, prec uint) numeric.Number { return numeric.ApproximateMultifactorial(n, k, prec) },
		func(n *big.Int, prec uint) *big.Int { return numeric.DigitsMultifactorial(n, k, prec) },
	)
}

// applyFamily implements rules 1/2/4 of the regime ladder for any one of the
// factorial/subfactorial/termial families, parameterized by the family's own
// exact/approximate/digit-count primitives.
func applyFamily(
	n *big.Int,
	exactLimit, approxLimit int64,
	consts *Consts,
	exact func(int64) *big.Int,
	approx func(*big.Int, uint) numeric.Number,
	digits func(*big.Int, uint) *big.Int,
) (numeric.Number, string, bool) {
	if n.Sign() < 0 {
		return numeric.Number{}, "negative input to an integer-domain primitive", false
	}
	if n.IsInt64() && n.Int64() <= exactLimit {
		return numeric.NewExact(exact(n.Int64())), "", true
	}
	if n.IsInt64() && n.Int64() <= approxLimit {
		approxResult := approx(n, consts.FloatPrecision)
		if approxResult.ExponentDigitCount() > consts.MaxExponentDigits {
			return approxResult.CollapseApproximate(), "", true
		}
		return approxResult, "", true
	}
	return numeric.NewApproximateDigits(digits(n, consts.FloatPrecision)), "", true
}

func applyToFloat(x *big.Float, job CalculationJob, consts *Consts) numeric.Number {
	switch {
	case job.IsSubfactorial:
		return numeric.NewFloat(numeric.FloatSubfactorial(x, consts.FloatPrecision))
	case job.IsTermialFamily():
		return numeric.NewFloat(numeric.FloatTermial(x, consts.FloatPrecision))
	case job.Level <= 1:
		return numeric.NewFloat(numeric.FloatFactorial(x, consts.FloatPrecision))
	default:
		return numeric.NewFloat(numeric.FloatMultifactorial(x, job.Level, consts.FloatPrecision))
	}
}

// Command svmtrain trains a binary soft-margin SVM on sparse libsvm-format
// data with Sequential Minimal Optimization.
//
// Usage:
//
//	svmtrain -train data.txt -kernel rbf -gamma 0.5 -c 10 -algo fan -o predictions.txt
//
// The trainer precomputes the full Gram matrix, runs the selected SMO
// driver (Platt heuristic or Fan second-order working-set selection),
// prints a diagnostics summary, and optionally writes one
// "<prediction>\t<label>" line per exemplar to the output file.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/svmkit/dataset"
	"github.com/katalvlaran/svmkit/kernel"
	"github.com/katalvlaran/svmkit/smo"
	"github.com/katalvlaran/svmkit/svm"
)

var (
	trainFile  = flag.String("train", "", "Training data file in libsvm format (required)")
	testFile   = flag.String("test", "", "Optional test data file; exemplars are evaluated but never optimized")
	kernelName = flag.String("kernel", "linear", "Kernel: linear, poly, rbf, sigmoid")
	penalty    = flag.Float64("c", 1, "Misclassification penalty C")
	penaltyPos = flag.Float64("cpos", 0, "Penalty for the positive class (default: C)")
	penaltyNeg = flag.Float64("cneg", 0, "Penalty for the negative class (default: C)")
	gamma      = flag.Float64("gamma", 1, "RBF width γ")
	degree     = flag.Int("degree", 3, "Polynomial degree")
	coefLin    = flag.Float64("coef-lin", 1, "Linear coefficient of poly/sigmoid kernels")
	coefConst  = flag.Float64("coef-const", 0, "Additive constant of poly/sigmoid kernels")
	algoName   = flag.String("algo", "platt", "Optimization algorithm: platt or fan")
	maxIter    = flag.Int("maxiter", svm.DefaultMaxIter, "Iteration cap; negative means unbounded")
	seed       = flag.Uint64("seed", smo.DefaultSeed, "Seed for the randomized partner selection")
	outFile    = flag.String("o", "", "Optional predictions output file")
	verbose    = flag.Bool("v", false, "Print training progress")
)

func main() {
	flag.Parse()

	if *trainFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -train flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	typ, err := kernelType(*kernelName)
	if err != nil {
		return err
	}
	algo, err := algorithm(*algoName)
	if err != nil {
		return err
	}

	// Load training (and optional test) exemplars into one index space.
	vecs, err := dataset.LoadFile(*trainFile)
	if err != nil {
		return err
	}
	trainingCount := len(vecs)
	if *testFile != "" {
		testVecs, err := dataset.LoadFile(*testFile)
		if err != nil {
			return err
		}
		vecs = append(vecs, testVecs...)
	}

	// Precompute the Gram matrix over all exemplars.
	params := kernel.Params{
		CoefLin:    *coefLin,
		CoefConst:  *coefConst,
		PolyDegree: *degree,
		RBFGamma:   *gamma,
	}
	if *verbose {
		fmt.Printf("Calculating gram matrix [size=%d, kernel=%s]...\n", len(vecs), typ)
	}
	gram, err := kernel.NewGram(vecs, typ, params)
	if err != nil {
		return err
	}

	labels := make([]int8, len(vecs))
	for i, v := range vecs {
		labels[i] = v.Label
	}
	m, err := svm.New(gram, labels, svm.Config{
		TrainingCount: trainingCount,
		C:             *penalty,
		CPos:          *penaltyPos,
		CNeg:          *penaltyNeg,
		MaxIter:       *maxIter,
	})
	if err != nil {
		return err
	}
	// The vectors served their purpose; the Gram matrix carries on alone.
	vecs = nil

	opts := smo.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(*seed))
	opts.Verbose = *verbose

	res, err := smo.Train(m, algo, &opts)
	if err != nil {
		return err
	}

	report(m, res)

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := m.WriteResults(f); err != nil {
			return err
		}
	}

	return nil
}

// report prints the post-training summary to stderr.
func report(m *svm.Model, res *smo.Result) {
	d := m.Diagnostics()
	lower, upper, unbound := m.SupportCounts()
	fmt.Fprintf(os.Stderr, "%s: done after %d iterations", res.Algorithm, res.Iterations)
	if res.CapReached {
		fmt.Fprintf(os.Stderr, " (iteration cap reached)")
	}
	fmt.Fprintf(os.Stderr, "\ntrain_err: %d/%d (TP:%d, TN:%d, FP:%d, FN:%d)\n",
		d.TrainErrCount, m.TrainingCount, d.Train.TP, d.Train.TN, d.Train.FP, d.Train.FN)
	if m.TestCount > 0 {
		fmt.Fprintf(os.Stderr, "test_err: %d/%d (TP:%d, TN:%d, FP:%d, FN:%d)\n",
			d.TestErrCount, m.TestCount, d.Test.TP, d.Test.TN, d.Test.FP, d.Test.FN)
	}
	fmt.Fprintf(os.Stderr, "bound_support=%d, unbound_support=%d, non_sv=%d, b=%g\n",
		upper, unbound, lower, m.B)
}

// kernelType maps the CLI spelling to the kernel tag.
func kernelType(name string) (kernel.Type, error) {
	for _, t := range []kernel.Type{kernel.Linear, kernel.Poly, kernel.RBF, kernel.Sigmoid} {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown kernel %q: %w", name, kernel.ErrUnknownKernel)
}

// algorithm maps the CLI spelling to the optimization algorithm.
func algorithm(name string) (smo.Algorithm, error) {
	for _, a := range []smo.Algorithm{smo.Platt, smo.Fan} {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("unknown algorithm %q: %w", name, smo.ErrUnknownAlgorithm)
}

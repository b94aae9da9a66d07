package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"mlpforge/internal/config"
	"mlpforge/internal/dataset"
	"mlpforge/internal/fold"
	"mlpforge/internal/metrics"
	"mlpforge/internal/network"
	"mlpforge/internal/norm"
	"mlpforge/internal/runner"
)

func main() {
	cfgPath := flag.String("config", "configs/demo.yaml", "Path to YAML config")
	dataPath := flag.String("data", "", "Override dataset file path")
	mode := flag.String("mode", "", "Run mode: split or cv")
	epochs := flag.Int("epochs", 0, "Number of training epochs")
	splitPercent := flag.Int("split-percent", 0, "Training share for percentage split")
	folds := flag.Int("folds", 0, "Number of cross-validation folds")
	seed := flag.Int64("seed", 0, "PRNG seed (0 leaves randomness unseeded)")
	logEvery := flag.Int("log-every", 0, "Log every N epochs")

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cfg.ApplyOverrides(config.Overrides{
		DataPath:     *dataPath,
		Mode:         *mode,
		Epochs:       *epochs,
		SplitPercent: *splitPercent,
		Folds:        *folds,
		Seed:         *seed,
		LogEvery:     *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	method, err := norm.ParseMethod(cfg.Normalization)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	labelPos, err := dataset.ParseLabelPosition(cfg.LabelPosition)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ds, err := dataset.ReadCSVFile(cfg.DataPath, dataset.ReadOptions{
		Delimiter:  cfg.Delimiter,
		SkipHeader: cfg.SkipHeader,
		LabelPos:   labelPos,
	})
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	log.Printf("data=%s rows=%d classes=%d", cfg.DataPath, ds.Len(), ds.Encoder().NumClasses())

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ds = ds.Shuffled(rng)

	switch cfg.Mode {
	case "split":
		err = runSplit(cfg, ds, method, rng)
	case "cv":
		err = runCrossValidation(cfg, ds, method, rng)
	}
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}
}

// runSplit trains one network on a percentage split, scheduling training as
// a task and awaiting its completion channel.
func runSplit(cfg *config.Config, ds *dataset.Dataset, method norm.Method, rng *rand.Rand) error {
	f, err := fold.ForPercentageSplit(ds, cfg.SplitPercent, method)
	if err != nil {
		return err
	}

	net := network.New("", len(f.TestFeatures[0]), cfg.Hidden, ds.Encoder().NumClasses(), rng)
	if cfg.LearningRate > 0 {
		net.SetLearningRate(cfg.LearningRate)
	}

	r := runner.New(net, f.Train, cfg.Epochs)
	r.SetLogEvery(cfg.LogEvery)

	result := <-r.Start()
	if result.Err != nil {
		return result.Err
	}

	predicted := r.Predict(f.TestFeatures)
	accuracy := metrics.Accuracy(predicted, f.Expected)
	log.Printf("network=%s mode=split train=%d test=%d accuracy=%.2f",
		result.ID, f.Train.Len(), len(f.TestFeatures), accuracy)

	if cfg.ModelOut != "" {
		if err := net.SaveFile(cfg.ModelOut); err != nil {
			return err
		}
		log.Printf("network=%s saved=%s", result.ID, cfg.ModelOut)
	}
	return nil
}

// runCrossValidation trains one fresh network per fold synchronously and
// logs the per-fold accuracies.
func runCrossValidation(cfg *config.Config, ds *dataset.Dataset, method norm.Method, rng *rand.Rand) error {
	splits, err := ds.CrossSplit(cfg.Folds, rng)
	if err != nil {
		return err
	}
	foldSets, err := fold.ForCrossValidation(splits, method)
	if err != nil {
		return err
	}

	numOutputs := ds.Encoder().NumClasses()
	total := 0.0
	for i, f := range foldSets {
		net := network.New("", len(f.TestFeatures[0]), cfg.Hidden, numOutputs, rng)
		if cfg.LearningRate > 0 {
			net.SetLearningRate(cfg.LearningRate)
		}
		r := runner.New(net, f.Train, cfg.Epochs)
		if err := r.Train(); err != nil {
			return err
		}
		accuracy := metrics.Accuracy(r.Predict(f.TestFeatures), f.Expected)
		total += accuracy
		log.Printf("network=%s mode=cv fold=%d accuracy=%.2f", net.ID(), i, accuracy)
	}
	log.Printf("mode=cv folds=%d mean_accuracy=%.2f", len(foldSets), total/float64(len(foldSets)))
	return nil
}

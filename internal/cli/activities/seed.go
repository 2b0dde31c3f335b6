package activities

import (
	"errors"
	"fmt"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/logger"
)

// SeedCmd fills the store with generated activity ending today.
type SeedCmd struct {
	Days int    `help:"Number of days to fill, ending today." default:"${seed_days}"`
	Seed uint64 `help:"Generator seed; the same seed yields the same activity." default:"1"`
}

func (c *SeedCmd) Validate() error {
	if c.Days < 1 {
		return errors.New("--days must be at least 1")
	}
	return nil
}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	today, err := ctx.Today(settings)
	if err != nil {
		return err
	}

	start := today.AddDays(-(c.Days - 1))
	data := activity.Generate(start, today, c.Seed)

	n, err := store(ctx, data, logger.Progress("seed"))
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d activities on %d of %d days (%s to %s)\n", n, len(data), c.Days, start.Key(), today.Key())
	return nil
}

package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
)

func newFoodCmd() *cobra.Command {
	var meal, desc, at string
	var alcohol bool
	cmd := &cobra.Command{
		Use:   "food <rating>",
		Short: "Log a meal rated 1-10",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("rating is required")
			}
			r, err := strconv.Atoi(args[0])
			if err != nil || r < 1 || r > 10 {
				return errors.New("rating must be an integer from 1 to 10")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, _ := strconv.Atoi(args[0])
			m, err := engine.ParseMeal(meal)
			if err != nil {
				return err
			}
			_, err = dispatch(context.Background(), cmd.OutOrStdout(), engine.LogFood{
				Rating:      rating,
				Alcohol:     alcohol,
				Meal:        m,
				Description: desc,
				Time:        at,
			})
			return err
		},
	}
	cmd.Flags().StringVarP(&meal, "meal", "m", "snack", "Meal (breakfast|lunch|dinner|snack)")
	cmd.Flags().BoolVar(&alcohol, "alcohol", false, "The meal included alcohol")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "What you ate")
	cmd.Flags().StringVarP(&at, "time", "t", "", "Time of the meal (HH:MM)")
	return cmd
}

func newSleepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep <hours>",
		Short: "Log last night's sleep",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("hours is required")
			}
			h, err := strconv.ParseFloat(args[0], 64)
			if err != nil || h < 0 || h > engine.MaxSleepHours {
				return fmt.Errorf("hours must be a number from 0 to %d", engine.MaxSleepHours)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _ := strconv.ParseFloat(args[0], 64)
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.LogSleep{Hours: h})
			return err
		},
	}
}

func newWaterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "water [glasses]",
		Short: "Track glasses of water (negative to undo)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.New("glasses must be an integer")
				}
				n = v
			}
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.TrackWater{Glasses: n})
			return err
		},
	}
}

func newShowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shower",
		Short: "Log today's cold shower",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.TakeColdShower{})
			return err
		},
	}
}

func newPRCmd() *cobra.Command {
	values := map[engine.StatKind]*float64{}
	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Record personal records",
		Example: `  lrpg pr --pullups 12 --pushups 40
  lrpg pr --reaction 0.28`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := engine.PRFields{}
			for k, v := range values {
				if cmd.Flags().Changed(string(k)) {
					fields[k] = *v
				}
			}
			if len(fields) == 0 {
				return errors.New("set at least one of --pullups --pushups --squats --stamina --reaction")
			}
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.UpdatePR{Fields: fields})
			return err
		},
	}
	for _, k := range engine.StatKinds {
		if k == engine.StatVitality {
			continue
		}
		v := new(float64)
		values[k] = v
		cmd.Flags().Float64Var(v, string(k), 0, k.Label())
	}
	return cmd
}

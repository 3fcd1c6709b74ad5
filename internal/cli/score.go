package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/tables"
)

// unsetReps marks a rep flag that was not given.
const unsetReps = -1

func addPersonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("gender", "g", "male", "Gender (male|female)")
	cmd.Flags().IntP("age", "a", 0, "Age in years")
	cmd.Flags().StringP("input", "i", "", "Read the record from a YAML or JSON file instead of flags")
}

func (a *app) pftCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pft",
		Short: "Score a Physical Fitness Test",
		Example: `  proctor pft --age 24 --pull-ups 18 --plank 3:05 --run 21:30
  proctor pft -g female -a 30 --push-ups 45 --plank 2:40 --row 22:10 --altitude`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.pftInput()
			if err != nil {
				return err
			}
			res, err := a.svc.ScorePFT(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(res, func() string { return pftText(res) })
		},
	}
	addPersonFlags(cmd)
	cmd.Flags().Int("pull-ups", unsetReps, "Pull-up repetitions")
	cmd.Flags().Int("push-ups", unsetReps, "Push-up repetitions")
	cmd.Flags().String("plank", "", "Plank time (MM:SS)")
	cmd.Flags().String("run", "", "3-mile run time (MM:SS)")
	cmd.Flags().String("row", "", "5k row time (MM:SS)")
	cmd.Flags().Bool("altitude", false, "Test was taken at altitude")
	return cmd
}

func (a *app) pftInput() (scoring.Input, error) {
	in := scoring.Input{Gender: a.v.GetString("gender"), Age: a.v.GetInt("age")}
	if path := a.v.GetString("input"); path != "" {
		if err := readRecord(path, &in); err != nil {
			return in, err
		}
		in.Altitude = in.Altitude || a.v.GetBool("altitude")
		return in, nil
	}

	if n := a.v.GetInt("pull-ups"); n != unsetReps {
		in.PullUps = &n
	}
	if n := a.v.GetInt("push-ups"); n != unsetReps {
		in.PushUps = &n
	}
	plank, err := a.clock("plank")
	if err != nil {
		return in, err
	}
	if plank != nil {
		in.PlankSeconds = *plank
	}
	if in.RunSeconds, err = a.clock("run"); err != nil {
		return in, err
	}
	if in.RowSeconds, err = a.clock("row"); err != nil {
		return in, err
	}
	if in.RowSeconds != nil {
		in.CardioEvent = string(tables.Row)
	}
	in.Altitude = a.v.GetBool("altitude")
	return in, nil
}

func (a *app) cftCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cft",
		Short:   "Score a Combat Fitness Test",
		Example: `  proctor cft --age 22 --mtc 2:45 --ammo-lift 110 --maneuver 2:20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.cftInput()
			if err != nil {
				return err
			}
			res, err := a.svc.ScoreCFT(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(res, func() string { return cftText(res) })
		},
	}
	addPersonFlags(cmd)
	cmd.Flags().String("mtc", "", "Movement to Contact time (MM:SS)")
	cmd.Flags().Int("ammo-lift", 0, "Ammunition lift repetitions")
	cmd.Flags().String("maneuver", "", "Maneuver Under Fire time (MM:SS)")
	cmd.Flags().Bool("altitude", false, "Test was taken at altitude")
	return cmd
}

func (a *app) cftInput() (scoring.Input, error) {
	in := scoring.Input{Gender: a.v.GetString("gender"), Age: a.v.GetInt("age")}
	if path := a.v.GetString("input"); path != "" {
		if err := readRecord(path, &in); err != nil {
			return in, err
		}
		in.Altitude = in.Altitude || a.v.GetBool("altitude")
		return in, nil
	}

	mtc, err := a.clock("mtc")
	if err != nil {
		return in, err
	}
	manuf, err := a.clock("maneuver")
	if err != nil {
		return in, err
	}
	if mtc != nil {
		in.MTCSeconds = *mtc
	}
	if manuf != nil {
		in.ManeuverSeconds = *manuf
	}
	in.AmmoLiftReps = a.v.GetInt("ammo-lift")
	in.Altitude = a.v.GetBool("altitude")
	return in, nil
}

func (a *app) bodyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "body",
		Short: "Check height/weight and, when over, body fat",
		Example: `  proctor body --age 27 --height 70 --weight 190 --neck 16 --abdomen 36
  proctor body -g female -a 31 --height 64 --weight 150 --neck 13 --abdomen 30 --hips 39`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := bodycomp.Input{
				Gender:  a.v.GetString("gender"),
				Age:     a.v.GetInt("age"),
				Height:  a.v.GetFloat64("height"),
				Weight:  a.v.GetFloat64("weight"),
				Neck:    a.v.GetFloat64("neck"),
				Abdomen: a.v.GetFloat64("abdomen"),
				Hips:    a.v.GetFloat64("hips"),
			}
			if path := a.v.GetString("input"); path != "" {
				in = bodycomp.Input{Gender: in.Gender, Age: in.Age}
				if err := readRecord(path, &in); err != nil {
					return err
				}
			}
			res, err := a.svc.Assess(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(res, func() string { return bodyText(res) })
		},
	}
	addPersonFlags(cmd)
	cmd.Flags().Float64("height", 0, "Height in inches")
	cmd.Flags().Float64("weight", 0, "Weight in pounds")
	cmd.Flags().Float64("neck", 0, "Neck circumference in inches")
	cmd.Flags().Float64("abdomen", 0, "Abdomen circumference in inches")
	cmd.Flags().Float64("hips", 0, "Hip circumference in inches (female)")
	return cmd
}

func (a *app) bracketsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets AGE",
		Short: "Show the fitness and weight brackets for an age",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			age, err := strconv.Atoi(args[0])
			if err != nil || age < 0 {
				return fmt.Errorf("invalid age %q", args[0])
			}
			b := a.svc.Brackets(age)
			return a.render(b, func() string { return bracketsText(b) })
		},
	}
}

func (a *app) instructionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "instructions GENDER",
		Short: "Show tape measurement instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ins, err := a.svc.Instructions(args[0])
			if err != nil {
				return err
			}
			return a.render(ins, func() string { return instructionsText(ins) })
		},
	}
}

// clock parses an MM:SS flag. An empty flag yields nil.
func (a *app) clock(key string) (*int, error) {
	s := a.v.GetString(key)
	if s == "" {
		return nil, nil //nolint:nilnil // absent flag
	}
	secs, err := model.ParseClock(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", key, err)
	}
	return &secs, nil
}

// readRecord decodes a YAML (or JSON) file into v.
func readRecord(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input file
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

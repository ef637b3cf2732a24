package main

import (
	"fmt"
	"time"

	"agentic_backend/internal/content"
	"agentic_backend/internal/lab"
	"agentic_backend/internal/lab/disclosure"

	"github.com/spf13/cobra"
)

var (
	labIndustry string
	labSpeed    float64
)

var labCmd = &cobra.Command{
	Use:   "lab",
	Short: "Run the AI Lab simulation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if labSpeed <= 0 {
			return fmt.Errorf("--speed must be positive")
		}

		catalog, err := content.Load()
		if err != nil {
			return err
		}
		ind, ok := catalog.Industry(labIndustry)
		if !ok {
			return fmt.Errorf("unknown industry %q", labIndustry)
		}

		steps := lab.StepsFromCatalog(catalog.Steps)
		for i := range steps {
			steps[i].Duration = time.Duration(float64(steps[i].Duration) / labSpeed)
		}

		events := make(chan disclosure.Event, disclosure.EventsPerRun(steps))
		timer := disclosure.New(steps, disclosure.WithObserver(func(ev disclosure.Event) {
			select {
			case events <- ev:
			default:
			}
		}))
		defer timer.Close()

		fmt.Println(titleStyle.Render(ind.Icon + " Создаём AI для: " + ind.Name))
		timer.Start(ind.ID)

		for {
			select {
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			case ev := <-events:
				switch ev.Kind {
				case disclosure.EventStepStarted:
					fmt.Println()
					fmt.Println(stepStyle.Render(fmt.Sprintf("%d. %s", ev.Step.ID, ev.Step.Title)))
					fmt.Println(detailStyle.Render("   " + ev.Step.Description))
				case disclosure.EventDetailRevealed:
					fmt.Println(detailStyle.Render("   • " + ev.Detail))
				case disclosure.EventCompleted:
					result := lab.Result(ind)
					fmt.Println()
					fmt.Println(doneStyle.Render("🎉 AI-агент готов!"))
					fmt.Println(panelStyle.Render(
						userStyle.Render("Клиент: "+result.Question) + "\n" +
							agentStyle.Render("AI-агент: "+result.Answer),
					))
					return nil
				}
			}
		}
	},
}

func init() {
	labCmd.Flags().StringVar(&labIndustry, "industry", "ecommerce", "industry to simulate (ecommerce, education, saas)")
	labCmd.Flags().Float64Var(&labSpeed, "speed", 1, "playback speed multiplier")
}

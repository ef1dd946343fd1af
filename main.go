package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	executorx "github.com/emiliomantilla/AIgent007/agent/agents/executor"
	catalogx "github.com/emiliomantilla/AIgent007/agent/catalog"
	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
	llmx "github.com/emiliomantilla/AIgent007/agent/llm"
	plannerx "github.com/emiliomantilla/AIgent007/agent/planner"
	promptx "github.com/emiliomantilla/AIgent007/agent/prompt"
	telephonyx "github.com/emiliomantilla/AIgent007/agent/telephony"
	callgatex "github.com/emiliomantilla/AIgent007/pkg/callgate"
	configx "github.com/emiliomantilla/AIgent007/pkg/config"
	_ "github.com/emiliomantilla/AIgent007/pkg/logger/autoload"
)

type AppConfig struct {
	Query string `envconfig:"QUERY" split_words:"true" default:"I need a shelter, preferably in the North, and I have a small dog"`
}

func main() {
	ctx := context.Background()
	appCfg := configx.MustNew[AppConfig]("")
	prompts := promptx.LoadPromptSet()

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	gen, err := llmx.NewGenerator(ctx, *llmCfg, prompts.System)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize text generator")
	}

	var source catalogx.Source = catalogx.NewMemorySource()
	if os.Getenv("CATALOG_DSN") != "" {
		pgCfg := configx.MustNew[catalogx.PostgresConfig]("CATALOG")
		pg, err := catalogx.NewPostgresSource(*pgCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize catalog source")
		}
		defer pg.Close()
		source = pg
		log.Info().Msg("using postgres catalog source")
	}

	var gate contractx.CallGateway = telephonyx.NewSimulatedGate()
	if os.Getenv("CALLGATE_URL") != "" {
		cgCfg := configx.MustNew[callgatex.Config]("CALLGATE")
		gate = callgatex.MustNew(*cgCfg)
		log.Info().Msg("using telephony gateway for availability confirmation")
	}

	exec, err := executorx.New(gen, gate, source)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize executor")
	}

	query := appCfg.Query
	if args := flag.Args(); len(args) > 0 {
		query = strings.Join(args, " ")
	}

	demoPlanner(query)

	result, err := exec.Execute(ctx, query)
	if err != nil {
		log.Fatal().Err(err).Msg("execute request")
	}

	log.Info().
		Str("status", result.Status).
		Strs("recommended", result.RecommendedResources).
		Msg("request executed")
	fmt.Println(result.Message)
}

// demoPlanner runs the planner side over the same query. The planner and the
// executor are parallel designs; nothing downstream consumes this plan yet.
func demoPlanner(query string) {
	intent := plannerx.DiscernIntent(query)

	prefs := plannerx.Preferences{}
	switch intent {
	case plannerx.IntentHousing, plannerx.IntentFood, plannerx.IntentMedical:
		prefs = plannerx.Preferences{"aid_needs": []string{"shelter", "food"}}
	case plannerx.IntentUpskill, plannerx.IntentWork:
		prefs = plannerx.Preferences{
			"growth_needs":    []string{"upskilling"},
			"skills_interest": "IT",
		}
	}

	tasks := plannerx.PlanSubtasks(intent, query, prefs, nil)
	types := make([]string, 0, len(tasks))
	for _, task := range tasks {
		types = append(types, string(task.Type))
	}
	log.Info().
		Str("intent", string(intent)).
		Strs("subtasks", types).
		Msg("planned sub-tasks")
}

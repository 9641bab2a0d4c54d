package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zkgirl/dreamlife/internal/application/handlers"
	"github.com/zkgirl/dreamlife/internal/application/session"
	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/services"
	"github.com/zkgirl/dreamlife/internal/infrastructure/random"
)

type playFlags struct {
	name    string
	gender  string
	country string
	city    string
	seed    uint64
}

func newPlayCmd() *cobra.Command {
	var flags playFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive life",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				return runPlay(cmd.Context(), deps, flags, cmd.Flags().Changed("seed"))
			})
		},
	}

	cmd.Flags().StringVarP(&flags.name, "name", "n", "Alex", "Character name")
	cmd.Flags().StringVarP(&flags.gender, "gender", "g", "female", "Character gender")
	cmd.Flags().StringVar(&flags.country, "country", "USA", "Birth country")
	cmd.Flags().StringVar(&flags.city, "city", "Springfield", "Birth city")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Fix the random seed for a reproducible life")

	return cmd
}

func runPlay(ctx context.Context, deps *Deps, flags playFlags, seedSet bool) error {
	// Configured event packs land in the catalog before the game loads it.
	for _, file := range deps.Config.Catalog.EventFiles {
		result, err := deps.CatalogHandler.HandleImport(ctx, file, handlers.ImportOptions{
			OnConflict: services.ConflictSkip,
		})
		if err != nil {
			return fmt.Errorf("importing %s: %w", file, err)
		}
		if len(result.Errors) > 0 {
			return fmt.Errorf("%s: %d invalid events, fix or remove the pack", file, len(result.Errors))
		}
	}

	catalog, err := loadCatalog(ctx, deps.Store)
	if err != nil {
		return err
	}

	var rng *random.Source
	switch {
	case seedSet:
		rng = random.New(flags.seed)
	case deps.Config.Game.Seed != nil:
		rng = random.New(*deps.Config.Game.Seed)
	default:
		rng = random.NewUnseeded()
	}

	game := handlers.NewGameHandler(session.New(catalog, rng))

	born, err := game.HandleNewLife(flags.name, flags.gender, flags.country, flags.city)
	if err != nil {
		return err
	}

	fmt.Printf("%s was born in %s, %s.\n", flags.name, flags.city, flags.country)
	fmt.Println(`Type "help" for commands. Press enter to live a year.`)
	if born.Event != nil {
		printEvent(born.Event)
	}

	loop := &playLoop{game: game, in: bufio.NewScanner(os.Stdin)}
	return loop.run()
}

// playLoop is the interactive command dispatcher for one life.
type playLoop struct {
	game *handlers.GameHandler
	in   *bufio.Scanner
}

func (l *playLoop) run() error {
	for {
		fmt.Print("> ")
		if !l.in.Scan() {
			return l.in.Err()
		}

		line := strings.TrimSpace(l.in.Text())
		fields := strings.Fields(line)

		var cmd, arg string
		if len(fields) > 0 {
			cmd = strings.ToLower(fields[0])
			arg = strings.Join(fields[1:], " ")
		}

		if n, err := strconv.Atoi(cmd); err == nil && cmd != "" {
			l.choose(n)
			continue
		}

		switch cmd {
		case "", "age", "advance":
			if done := l.advance(); done {
				return nil
			}
		case "dismiss":
			l.report(l.game.HandleDismiss())
		case "status":
			l.status()
		case "history":
			l.history()
		case "achievements":
			l.achievements()
		case "careers":
			l.careers()
		case "apply":
			l.apply(arg)
		case "resign":
			l.report(l.game.Session().QuitJob())
		case "majors":
			l.majors()
		case "enroll":
			l.report(l.game.Session().Enroll(arg))
		case "graduate":
			l.report(l.game.Session().Graduate())
		case "rel":
			l.relationships()
		case "date":
			l.date()
		case "friend":
			l.friend()
		case "propose":
			l.propose()
		case "breakup":
			l.report(l.game.Session().BreakUp())
		case "time", "talk", "compliment", "gift", "ask", "argue":
			l.relationshipAction(cmd, arg)
		case "business":
			l.businesses()
		case "start":
			l.startBusiness(arg)
		case "upgrade":
			l.upgradeBusiness(arg)
		case "sellbiz":
			l.sellBusiness(arg)
		case "shop":
			l.shop()
		case "buy":
			l.buy(arg)
		case "assets":
			l.assets()
		case "sellasset":
			l.sellAsset(arg)
		case "activities":
			l.activities()
		case "do":
			l.doActivity(arg)
		case "help":
			printHelp()
		case "exit":
			return nil
		default:
			fmt.Printf("unknown command %q, type \"help\"\n", cmd)
		}
	}
}

// report prints an error, if any. The loop never stops on a rejected
// command.
func (l *playLoop) report(err error) {
	if err != nil {
		fmt.Printf("! %v\n", err)
	}
}

func (l *playLoop) advance() (gameOver bool) {
	result, err := l.game.HandleAdvance()
	if err != nil {
		if errors.Is(err, entities.ErrEventPending) {
			fmt.Println("! an event needs a decision first (pick a choice number or \"dismiss\")")
		} else {
			l.report(err)
		}
		return false
	}

	fmt.Printf("You are now %d.\n", result.Report.Age)
	if result.Report.StartedSchool != nil {
		fmt.Printf("Started %s school.\n", *result.Report.StartedSchool)
	}
	if result.Report.Income > 0 {
		fmt.Printf("Yearly income: %s\n", result.Income)
	}

	if result.Report.Died {
		l.printObituary(result.Report.CauseOfDeath)
		return true
	}

	if result.Event != nil {
		printEvent(result.Event)
	}
	return false
}

func (l *playLoop) choose(n int) {
	result, err := l.game.HandleChoice(n - 1)
	if err != nil {
		l.report(err)
		return
	}

	r := result.Result
	switch {
	case r.Arrested:
		fmt.Println("You were arrested.")
	case r.GambleWon:
		fmt.Println("The gamble paid off.")
	case r.BusinessHit != nil:
		if *r.BusinessHit {
			fmt.Println("The venture took off.")
		} else {
			fmt.Println("The venture flopped.")
		}
	}

	if result.State.IsDead {
		l.printObituary(result.State.CauseOfDeath)
	}
}

func (l *playLoop) status() {
	status := l.game.HandleStatus()
	state := status.State

	if state.Character == nil {
		fmt.Println("no life in progress")
		return
	}

	fmt.Printf("%s, age %d, %s, %s\n", state.Character.Name, state.Stats.Age, state.Character.City, state.Character.Country)
	fmt.Printf("  happiness %d  health %d  smarts %d  looks %d\n",
		state.Stats.Happiness, state.Stats.Health, state.Stats.Smarts, state.Stats.Looks)
	if state.Stats.Fame != nil {
		fmt.Printf("  fame %d\n", *state.Stats.Fame)
	}
	fmt.Printf("  money %s  net worth %s\n", status.Money, status.NetWorth)
	if state.Job != nil {
		fmt.Printf("  job: %s, %s/yr (%d years)\n", state.Job.Title, status.Salary, state.Job.YearsWorked)
	}
	if state.Education.Level != entities.EducationNone {
		fmt.Printf("  education: %s", state.Education.Level)
		if state.Education.Major != "" {
			fmt.Printf(" (%s)", state.Education.Major)
		}
		if state.Education.Graduated {
			fmt.Print(", graduated")
		}
		fmt.Println()
	}
	fmt.Printf("  relationships %d  businesses %d  assets %d  pets %d\n",
		len(state.Relationships), len(state.Businesses), len(state.Assets), len(state.Pets))
}

func (l *playLoop) history() {
	state := l.game.HandleStatus().State
	for _, entry := range state.History {
		fmt.Printf("  age %3d  %s\n", entry.Age, entry.Text)
	}
}

func (l *playLoop) achievements() {
	state := l.game.HandleStatus().State
	for _, a := range state.Achievements {
		mark := " "
		if a.Unlocked {
			mark = "x"
		}
		fmt.Printf("  [%s] %-12s %s", mark, a.Name, a.Description)
		if a.UnlockedAt != nil {
			fmt.Printf(" (age %d)", *a.UnlockedAt)
		}
		fmt.Println()
	}
}

func (l *playLoop) careers() {
	careers, err := l.game.Session().AvailableCareers()
	if err != nil {
		l.report(err)
		return
	}
	if len(careers) == 0 {
		fmt.Println("no careers open to you right now")
		return
	}
	for _, c := range careers {
		fmt.Printf("  %-28s %s/yr\n", c.Title, handlers.FormatMoney(c.BaseSalary))
	}
}

func (l *playLoop) apply(title string) {
	if title == "" {
		fmt.Println("usage: apply <career title>")
		return
	}
	result, err := l.game.Session().ApplyForJob(title)
	if err != nil {
		l.report(err)
		return
	}
	if result.Hired {
		fmt.Printf("Hired as %s at %s/yr.\n", result.Job.Title, handlers.FormatMoney(result.Job.Salary))
	} else {
		fmt.Println("Rejected after the interview.")
	}
}

func (l *playLoop) majors() {
	majors, err := l.game.Session().AvailableMajors()
	if err != nil {
		l.report(err)
		return
	}
	if len(majors) == 0 {
		fmt.Println("no fields of study open to you right now")
		return
	}
	for _, m := range majors {
		fmt.Printf("  %-20s %s (%s, smarts %d+)\n", m.ID, m.Name, m.Stage, m.RequiredSmarts)
	}
}

func (l *playLoop) relationships() {
	state := l.game.HandleStatus().State
	if len(state.Relationships) == 0 {
		fmt.Println("nobody in your life yet")
		return
	}
	for i, r := range state.Relationships {
		status := ""
		if !r.Alive {
			status = " (deceased)"
		}
		fmt.Printf("  %d. %-12s %-8s bond %d%s\n", i+1, r.Name, r.Type, r.Bond, status)
	}
}

func (l *playLoop) date() {
	rel, err := l.game.Session().StartDating()
	if err != nil {
		l.report(err)
		return
	}
	fmt.Printf("You started dating %s.\n", rel.Name)
}

func (l *playLoop) friend() {
	rel, err := l.game.Session().MakeFriend()
	if err != nil {
		l.report(err)
		return
	}
	fmt.Printf("You became friends with %s.\n", rel.Name)
}

func (l *playLoop) propose() {
	accepted, err := l.game.Session().Propose()
	if err != nil {
		l.report(err)
		return
	}
	if accepted {
		fmt.Println("They said yes!")
	} else {
		fmt.Println("They turned you down.")
	}
}

func (l *playLoop) relationshipAction(action, arg string) {
	rel, ok := l.relationshipByIndex(arg)
	if !ok {
		return
	}

	s := l.game.Session()
	switch action {
	case "time":
		l.report(s.QualityTime(rel.ID))
	case "talk":
		l.report(s.Converse(rel.ID))
	case "compliment":
		l.report(s.Compliment(rel.ID))
	case "gift":
		l.report(s.GiveGift(rel.ID))
	case "ask":
		amount, err := s.AskForMoney(rel.ID)
		if err != nil {
			l.report(err)
			return
		}
		if amount > 0 {
			fmt.Printf("%s gave you %s.\n", rel.Name, handlers.FormatMoney(amount))
		} else {
			fmt.Printf("%s refused.\n", rel.Name)
		}
	case "argue":
		l.report(s.Argue(rel.ID))
	}
}

func (l *playLoop) relationshipByIndex(arg string) (entities.Relationship, bool) {
	state := l.game.HandleStatus().State
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.Relationships) {
		fmt.Println("give a relationship number from \"rel\"")
		return entities.Relationship{}, false
	}
	return state.Relationships[n-1], true
}

func (l *playLoop) businesses() {
	state := l.game.HandleStatus().State
	types := l.game.Session().BusinessTypes()

	if len(state.Businesses) > 0 {
		fmt.Println("owned:")
		for i, b := range state.Businesses {
			fmt.Printf("  %d. %-20s value %s  revenue %s/yr  rep %d\n",
				i+1, b.Name, handlers.FormatMoney(b.Value), handlers.FormatMoney(b.Revenue), b.Reputation)
		}
	}
	fmt.Println("available:")
	for _, t := range types {
		fmt.Printf("  %-16s %s to start, %s/yr base revenue\n",
			t.ID, handlers.FormatMoney(t.StartupCost), handlers.FormatMoney(t.BaseRevenue))
	}
}

func (l *playLoop) startBusiness(typeID string) {
	if typeID == "" {
		fmt.Println("usage: start <business type id>")
		return
	}
	b, err := l.game.Session().StartBusiness(typeID)
	if err != nil {
		l.report(err)
		return
	}
	fmt.Printf("You founded %s.\n", b.Name)
}

func (l *playLoop) upgradeBusiness(arg string) {
	b, ok := l.businessByIndex(arg)
	if !ok {
		return
	}
	if err := l.game.Session().UpgradeBusiness(b.ID); err != nil {
		l.report(err)
		return
	}
	fmt.Printf("Upgraded %s.\n", b.Name)
}

func (l *playLoop) sellBusiness(arg string) {
	b, ok := l.businessByIndex(arg)
	if !ok {
		return
	}
	price, err := l.game.Session().SellBusiness(b.ID)
	if err != nil {
		l.report(err)
		return
	}
	fmt.Printf("Sold %s for %s.\n", b.Name, handlers.FormatMoney(price))
}

func (l *playLoop) businessByIndex(arg string) (entities.Business, bool) {
	state := l.game.HandleStatus().State
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.Businesses) {
		fmt.Println("give a business number from \"business\"")
		return entities.Business{}, false
	}
	return state.Businesses[n-1], true
}

func (l *playLoop) shop() {
	for _, item := range l.game.Session().ShopItems() {
		fmt.Printf("  %-20s %-12s %s\n", item.ID, item.Category, handlers.FormatMoney(item.Price))
	}
}

func (l *playLoop) buy(itemID string) {
	if itemID == "" {
		fmt.Println("usage: buy <item id>")
		return
	}
	asset, err := l.game.Session().BuyItem(itemID)
	if err != nil {
		l.report(err)
		return
	}
	if asset != nil {
		fmt.Printf("You now own %s.\n", asset.Name)
	} else {
		fmt.Println("Bought.")
	}
}

func (l *playLoop) assets() {
	state := l.game.HandleStatus().State
	if len(state.Assets) == 0 {
		fmt.Println("you own nothing resalable")
		return
	}
	for i, a := range state.Assets {
		fmt.Printf("  %d. %-20s %-6s resale %s\n",
			i+1, a.Name, a.Kind, handlers.FormatMoney(a.ResaleValue(state.Stats.Age)))
	}
}

func (l *playLoop) sellAsset(arg string) {
	state := l.game.HandleStatus().State
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.Assets) {
		fmt.Println("give an asset number from \"assets\"")
		return
	}

	asset := state.Assets[n-1]
	price, sellErr := l.game.Session().SellAsset(asset.ID)
	if sellErr != nil {
		l.report(sellErr)
		return
	}
	fmt.Printf("Sold %s for %s.\n", asset.Name, handlers.FormatMoney(price))
}

func (l *playLoop) activities() {
	for _, a := range l.game.Session().Activities() {
		fmt.Printf("  %-20s %-12s", a.ID, a.Category)
		if a.Cost > 0 {
			fmt.Printf(" %s", handlers.FormatMoney(a.Cost))
		}
		fmt.Println()
	}
}

func (l *playLoop) doActivity(activityID string) {
	if activityID == "" {
		fmt.Println("usage: do <activity id>")
		return
	}
	result, err := l.game.Session().DoActivity(activityID)
	if err != nil {
		l.report(err)
		return
	}
	fmt.Println(result.Text)
}

func (l *playLoop) printObituary(cause string) {
	state := l.game.HandleStatus().State
	fmt.Printf("\n%s died at age %d. Cause: %s.\n", state.Character.Name, state.Stats.Age, cause)

	unlocked := 0
	for _, a := range state.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	fmt.Printf("Final balance %s, %d achievements unlocked, %d life events lived.\n",
		handlers.FormatMoney(state.Stats.Money), unlocked, len(state.History))
}

func printEvent(e *entities.Event) {
	fmt.Printf("\n%s\n", e.Text)
	for i, c := range e.Choices {
		fmt.Printf("  %d. %s\n", i+1, c.Text)
	}
}

func printHelp() {
	fmt.Print(`commands:
  (enter) / age        live one year
  1..n                 answer the pending event
  dismiss              ignore the pending event
  status / history / achievements
  careers / apply <title> / resign
  majors / enroll <id> / graduate
  rel / date / friend / propose / breakup
  time|talk|compliment|gift|ask|argue <n>
  business / start <type> / upgrade <n> / sellbiz <n>
  shop / buy <id> / assets / sellasset <n>
  activities / do <id>
  exit
`)
}

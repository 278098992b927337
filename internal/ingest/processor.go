package ingest

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"wordle-league/internal/config"
	"wordle-league/internal/feed"
	"wordle-league/internal/metrics"
	"wordle-league/internal/parser"
	"wordle-league/internal/pubsub"
	"wordle-league/internal/render"
	"wordle-league/internal/stats"
)

// New creates a new Processor.
func New(leagues LeagueStore, scoreStore ScoreStore, aggregator Aggregator, seasonTracker SeasonTracker, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, rules config.RulesConfig) *Processor {
	return &Processor{
		leagues:    leagues,
		scores:     scoreStore,
		aggregator: aggregator,
		season:     seasonTracker,
		notifier:   notifier,
		metrics:    metrics,
		pubsub:     pubsub,
		rules:      rules,
	}
}

// ProcessBatch runs one ingest batch over captured messages. Messages that
// are not score submissions, come from unknown conversations, or have an
// unmapped sender are skipped individually; the rest of the batch always
// proceeds.
func (p *Processor) ProcessBatch(messages []feed.Message, dryRun bool) BatchSummary {
	log.Info("Starting ingest batch", "messages", len(messages))
	startTime := time.Now()
	p.metrics.IncIngestRuns()

	var summary BatchSummary
	touched := make(map[int64]bool)

	for _, msg := range messages {
		summary.Processed++
		p.metrics.IncMessagesProcessed()
		p.processMessage(msg, dryRun, &summary, touched)
	}

	p.metrics.ObserveBatchDuration(time.Since(startTime).Seconds())

	if summary.Recorded > 0 && !dryRun {
		event := pubsub.SiteRefreshEvent{ScoresRecorded: summary.Recorded}
		for id := range touched {
			event.LeagueIDs = append(event.LeagueIDs, id)
		}
		if err := p.pubsub.SendMessage(pubsub.EventSiteRefresh, event); err != nil {
			log.Error("Failed to publish site refresh event", "error", err)
		}
	}

	log.Info("Ingest batch finished",
		"processed", summary.Processed,
		"recorded", summary.Recorded,
		"parse_misses", summary.ParseMisses,
		"unresolved", summary.Unresolved,
		"unknown_threads", summary.UnknownThreads,
		"malformed_grids", summary.MalformedGrids,
	)
	return summary
}

func (p *Processor) processMessage(msg feed.Message, dryRun bool, summary *BatchSummary, touched map[int64]bool) {
	lg, err := p.leagues.GetLeagueByThreadKey(msg.ThreadKey)
	if err != nil {
		log.Error("Failed to look up league for thread", "error", err, "thread", msg.ThreadKey)
		return
	}
	if lg == nil {
		summary.UnknownThreads++
		log.Debug("Skipping message from unknown conversation", "thread", msg.ThreadKey)
		return
	}

	parsed := parser.Parse(msg.Text)
	if parsed == nil {
		// Normal outcome for chat traffic and reaction echoes.
		summary.ParseMisses++
		p.metrics.IncParseMisses()
		return
	}

	player, err := p.leagues.ResolvePlayer(msg.Sender, lg.ID)
	if err != nil {
		log.Error("Failed to resolve sender", "error", err, "leagueID", lg.ID)
		return
	}
	if player == nil {
		// Dropped, never attributed to a player in another league. Counted
		// so an operator can add the missing mapping.
		summary.Unresolved++
		p.metrics.IncUnresolvedIdentities()
		log.Warn("No player mapping for sender in league", "leagueID", lg.ID, "league", lg.Name)
		return
	}

	if parsed.GridDiscarded {
		summary.MalformedGrids++
		p.metrics.IncMalformedGrids()
		log.Warn("Recording score without grid after strict validation rejected it",
			"playerID", player.ID, "game", parsed.GameNumber)
	}

	if dryRun {
		log.Info("[Dry Run] Would record score",
			"player", player.Name, "game", parsed.GameNumber, "score", parsed.Score)
		summary.Recorded++
		return
	}

	if _, err := p.scores.Upsert(player.ID, parsed.GameNumber, parsed.Score, parsed.EmojiGrid, msg.ObservedAt); err != nil {
		log.Error("Failed to record score", "error", err, "playerID", player.ID, "game", parsed.GameNumber)
		return
	}
	summary.Recorded++
	touched[lg.ID] = true
	p.metrics.IncScoresRecorded()
	log.Info("Recorded score", "player", player.Name, "league", lg.Name, "game", parsed.GameNumber, "score", parsed.Score)
}

// CloseWeek finalizes the week starting at windowStart for a league: it
// ranks the weekly table, awards the win to the whole leading tie group, and
// announces a champion when a player reaches the season target.
func (p *Processor) CloseWeek(leagueID int64, windowStart int, dryRun bool) error {
	lg, err := p.leagues.GetLeague(leagueID)
	if err != nil {
		return fmt.Errorf("failed to look up league: %w", err)
	}
	if lg == nil {
		return fmt.Errorf("unknown league %d", leagueID)
	}

	players, err := p.leagues.GetPlayers(leagueID)
	if err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}

	names := make(map[string]string, len(players))
	weekly := make([]stats.WeeklyStat, 0, len(players))
	for _, player := range players {
		names[player.ID] = player.DisplayName()
		stat, err := p.aggregator.WeeklyStat(player.ID, windowStart)
		if err != nil {
			return err
		}
		weekly = append(weekly, stat)
	}
	stats.RankWeekly(weekly)

	weekID := stats.WeekID(p.rules, windowStart)
	winners := stats.WeekWinners(weekly, p.rules.MinGamesToWin)
	if len(winners) == 0 {
		log.Info("No eligible weekly winner", "leagueID", leagueID, "week", weekID)
		return nil
	}

	winnerNames := make([]string, 0, len(winners))
	for _, w := range winners {
		winnerNames = append(winnerNames, names[w.PlayerID])
		if dryRun {
			log.Info("[Dry Run] Would record weekly win", "player", names[w.PlayerID], "week", weekID)
			continue
		}
		if err := p.season.RecordWeekWinner(leagueID, weekID, w.PlayerID, w.Total); err != nil {
			return err
		}
	}

	rows := make([]render.WeeklyRow, 0, len(weekly))
	for _, stat := range weekly {
		row := render.WeeklyRow{
			PlayerName:     names[stat.PlayerID],
			WeeklyTotal:    render.Dash,
			UsedScores:     stat.UsedScores,
			ThrownOut:      stat.ThrownOut,
			FailedAttempts: stat.FailedAttempts,
		}
		if stat.HasTotal {
			row.WeeklyTotal = fmt.Sprintf("%d", stat.Total)
		}
		rows = append(rows, row)
	}
	if err := p.notifier.SendWeeklyRecap(lg.Name, weekID, rows, winnerNames, dryRun); err != nil {
		log.Error("Failed to send weekly recap", "error", err, "leagueID", leagueID)
	}

	if !dryRun {
		event := pubsub.WeekClosedEvent{LeagueID: leagueID, WeekID: weekID, Winners: winnerNames}
		if err := p.pubsub.SendMessage(pubsub.EventWeekClosed, event); err != nil {
			log.Error("Failed to publish week closed event", "error", err)
		}
	}

	champion, err := p.season.Champion(leagueID)
	if err != nil {
		return err
	}
	if champion != nil {
		name := names[champion.PlayerID]
		if name == "" {
			if player, err := p.leagues.GetPlayer(champion.PlayerID); err == nil && player != nil {
				name = player.DisplayName()
			}
		}
		log.Info("Season champion reached win target", "player", name, "wins", champion.Wins, "leagueID", leagueID)
		if err := p.notifier.SendChampionAnnouncement(lg.Name, name, champion.Wins, dryRun); err != nil {
			log.Error("Failed to send champion announcement", "error", err, "leagueID", leagueID)
		}
	}

	return nil
}

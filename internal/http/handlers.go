package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"wordle-league/internal/stats"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear score store")
		s.Scores.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) ListLeaguesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := s.Leagues.GetLeagues()
		if err != nil {
			http.Error(w, "Failed to get leagues", http.StatusInternalServerError)
			log.Error("Failed to get leagues from store", "error", err)
			return
		}
		writeJSON(w, leagues)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		players, err := s.Leagues.GetPlayers(leagueID)
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err, "leagueID", leagueID)
			return
		}
		writeJSON(w, players)
	}
}

// IngestHandler pulls captured messages from the feed and runs them through
// the batch pipeline. The 'since' parameter (RFC 3339) bounds the fetch; it
// defaults to the last 24 hours.
func (s *Server) IngestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting ingest run...")
		isDryRun := isDryRunFromContext(r)

		since := time.Now().Add(-24 * time.Hour)
		if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
			parsed, err := time.Parse(time.RFC3339, sinceStr)
			if err != nil {
				http.Error(w, "Invalid 'since' parameter, expected RFC 3339", http.StatusBadRequest)
				return
			}
			since = parsed
		}

		messages, err := s.Feed.GetMessages(since)
		if err != nil {
			log.Error("Failed to fetch messages from feed", "error", err)
			http.Error(w, "Failed to fetch messages", http.StatusInternalServerError)
			return
		}
		log.Info("Fetched messages from feed", "count", len(messages), "since", since)

		summary := s.Processor.ProcessBatch(messages, isDryRun)
		writeJSON(w, summary)
		log.Info("Ingest run finished.")
	}
}

// CloseWeekHandler finalizes the scoring week containing the given game for
// a league. With no 'game' parameter it closes the week of the latest
// recorded game.
func (s *Server) CloseWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		game, err := s.gameParam(r, leagueID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		windowStart := stats.WindowStart(s.Cfg.Rules, game)
		if err := s.Processor.CloseWeek(leagueID, windowStart, isDryRun); err != nil {
			log.Error("Failed to close week", "error", err, "leagueID", leagueID, "windowStart", windowStart)
			http.Error(w, "Failed to close week", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Closed week %s", stats.WeekID(s.Cfg.Rules, windowStart))
	}
}

func (s *Server) DailyBoardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		game, err := s.gameParam(r, leagueID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := s.Renderer.DailyBoard(leagueID, game)
		if err != nil {
			log.Error("Failed to build daily board", "error", err, "leagueID", leagueID, "game", game)
			http.Error(w, "Failed to build daily board", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rows)
	}
}

func (s *Server) WeeklyTableHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		game, err := s.gameParam(r, leagueID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := s.Renderer.WeeklyTable(leagueID, stats.WindowStart(s.Cfg.Rules, game))
		if err != nil {
			log.Error("Failed to build weekly table", "error", err, "leagueID", leagueID, "game", game)
			http.Error(w, "Failed to build weekly table", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rows)
	}
}

func (s *Server) AllTimeTableHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := s.Renderer.AllTimeTable(leagueID)
		if err != nil {
			log.Error("Failed to build all-time table", "error", err, "leagueID", leagueID)
			http.Error(w, "Failed to build all-time table", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rows)
	}
}

func (s *Server) SeasonTableHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := s.Renderer.SeasonTable(leagueID)
		if err != nil {
			log.Error("Failed to build season table", "error", err, "leagueID", leagueID)
			http.Error(w, "Failed to build season table", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rows)
	}
}

// NotifyDailyHandler posts one game's board to the league channel.
func (s *Server) NotifyDailyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		game, err := s.gameParam(r, leagueID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		lg, err := s.Leagues.GetLeague(leagueID)
		if err != nil {
			http.Error(w, "Failed to look up league", http.StatusInternalServerError)
			log.Error("Failed to look up league", "error", err, "leagueID", leagueID)
			return
		}
		if lg == nil {
			http.Error(w, "Unknown league", http.StatusNotFound)
			return
		}

		rows, err := s.Renderer.DailyBoard(leagueID, game)
		if err != nil {
			log.Error("Failed to build daily board", "error", err, "leagueID", leagueID, "game", game)
			http.Error(w, "Failed to build daily board", http.StatusInternalServerError)
			return
		}
		if err := s.Notifier.SendDailyBoard(lg.Name, game, rows, isDryRun); err != nil {
			log.Error("Failed to send daily board", "error", err, "leagueID", leagueID, "game", game)
			http.Error(w, "Failed to send daily board", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ResetSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Received request to reset season", "leagueID", leagueID)
		if err := s.Season.Reset(leagueID); err != nil {
			log.Error("Failed to reset season", "error", err, "leagueID", leagueID)
			http.Error(w, "Failed to reset season", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Season reset!")
	}
}

func leagueIDParam(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("league")
	if raw == "" {
		return 0, fmt.Errorf("'league' parameter is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid 'league' parameter: %s", raw)
	}
	return id, nil
}

// gameParam reads the 'game' query parameter, falling back to the latest
// recorded game in the league.
func (s *Server) gameParam(r *http.Request, leagueID int64) (int, error) {
	raw := r.URL.Query().Get("game")
	if raw != "" {
		game, err := strconv.Atoi(raw)
		if err != nil || game <= 0 {
			return 0, fmt.Errorf("invalid 'game' parameter: %s", raw)
		}
		return game, nil
	}
	latest, err := s.Scores.LatestGame(leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to determine latest game: %w", err)
	}
	if latest == 0 {
		return 0, fmt.Errorf("no recorded games for league %d, pass 'game' explicitly", leagueID)
	}
	return latest, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

package bot

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"deptcal/internal/config"
	"deptcal/internal/holiday"
	"deptcal/internal/logging"
	"deptcal/internal/model"
	"deptcal/internal/service"
)

// Bot is the Telegram agenda surface: it answers /today and /month queries
// and posts the daily agenda to the configured chat.
type Bot struct {
	api      *tgbotapi.BotAPI
	schedule *service.ScheduleService
	holidays *holiday.Korean
	cfg      *config.TelegramConfig
	loc      *time.Location
}

func New(cfg *config.TelegramConfig, schedule *service.ScheduleService, holidays *holiday.Korean, loc *time.Location) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	logging.Info("bot authorized", "account", api.Self.UserName)

	return &Bot{
		api:      api,
		schedule: schedule,
		holidays: holidays,
		cfg:      cfg,
		loc:      loc,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	logging.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		if err := b.handleCommand(ctx, update.Message); err != nil {
			logging.Error("handle command", "command", update.Message.Command(), "err", err)
		}
	}

	return nil
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start", "help":
		return b.sendText(msg.Chat.ID,
			"부서 월간 일정 봇입니다.\n"+
				"/today — 오늘 일정\n"+
				"/month [yyyy-mm] — 월간 일정")
	case "today":
		return b.handleToday(ctx, msg.Chat.ID)
	case "month":
		return b.handleMonth(ctx, msg.Chat.ID, strings.TrimSpace(msg.CommandArguments()))
	default:
		return b.sendText(msg.Chat.ID, "알 수 없는 명령입니다. /help 를 확인해주세요.")
	}
}

func (b *Bot) handleToday(ctx context.Context, chatID int64) error {
	text, err := b.daySummary(ctx, time.Now().In(b.loc))
	if err != nil {
		return err
	}
	return b.sendHTML(chatID, text)
}

func (b *Bot) handleMonth(ctx context.Context, chatID int64, arg string) error {
	now := time.Now().In(b.loc)
	year, month := now.Year(), now.Month()
	if arg != "" {
		t, err := time.Parse("2006-01", arg)
		if err != nil {
			return b.sendText(chatID, "형식이 올바르지 않습니다. 예: /month 2025-11")
		}
		year, month = t.Year(), t.Month()
	}

	view, err := b.schedule.ProjectMonth(ctx, year, month)
	if err != nil {
		return err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🗓 <b>%d년 %02d월 일정</b>\n\n", year, int(month)))

	days := make([]string, 0, len(view))
	for day := range view {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) == 0 {
		builder.WriteString("등록된 일정이 없습니다.")
	}
	for _, day := range days {
		t, _ := model.ParseDate(day)
		builder.WriteString(fmt.Sprintf("<b>%s (%s)</b>", day, koreanWeekday(t.Weekday())))
		if name, ok := b.holidays.Name(t); ok {
			builder.WriteString(" 🔴 " + html.EscapeString(name))
		}
		builder.WriteString("\n")
		for _, ev := range view[day] {
			builder.WriteString("• " + html.EscapeString(ev.Title) + "\n")
		}
		builder.WriteString("\n")
	}

	return b.sendHTML(chatID, builder.String())
}

// DailyAgenda posts today's events to the configured chat. Wired to the
// cron scheduler.
func (b *Bot) DailyAgenda(ctx context.Context) error {
	if b.cfg.ChatID == 0 {
		logging.Warn("daily agenda skipped, no chat configured")
		return nil
	}
	text, err := b.daySummary(ctx, time.Now().In(b.loc))
	if err != nil {
		return err
	}
	return b.sendHTML(b.cfg.ChatID, text)
}

func (b *Bot) daySummary(ctx context.Context, day time.Time) (string, error) {
	view, err := b.schedule.ProjectMonth(ctx, day.Year(), day.Month())
	if err != nil {
		return "", err
	}
	date := model.FormatDate(day)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📋 <b>%s (%s) 일정</b>\n", date, koreanWeekday(day.Weekday())))
	if name, ok := b.holidays.Name(day); ok {
		builder.WriteString("🔴 " + html.EscapeString(name) + "\n")
	}
	builder.WriteString("\n")

	events := view[date]
	if len(events) == 0 {
		builder.WriteString("오늘은 등록된 일정이 없습니다.")
	}
	for _, ev := range events {
		builder.WriteString("• " + html.EscapeString(ev.Title))
		if ev.IsMultiDay() {
			builder.WriteString(fmt.Sprintf(" (%s ~ %s)", *ev.PeriodStart, *ev.PeriodEnd))
		}
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func koreanWeekday(w time.Weekday) string {
	return [...]string{"일", "월", "화", "수", "목", "금", "토"}[w]
}

func (b *Bot) sendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) sendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

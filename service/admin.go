package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/store"
	"github.com/socialboost/vision/utils"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAlreadyRefunded      = errors.New("Pagamento já foi reembolsado")
	ErrInvalidPaymentStatus = errors.New("Status de pagamento inválido")
	ErrUnknownKey           = errors.New("Chave desconhecida")
)

// Mailer sends transactional e-mails
type Mailer interface {
	SendEmail(toName, toEmail, subject, textContent, htmlContent string) error
}

// AdminStore is what the back-office reads and writes
type AdminStore interface {
	store.ClientStore
	store.PaymentStore
	store.SettingsStore
}

// SettingsForm is the settings form as submitted by the admin panel
type SettingsForm struct {
	GeminiKey  string `schema:"geminiKey"`
	OpenAIKey  string `schema:"openaiKey"`
	LimitFree  string `schema:"limitFree"`
	LimitBasic string `schema:"limitBasic"`
	LimitPro   string `schema:"limitPro"`
}

// Dashboard is the admin home page payload
type Dashboard struct {
	Stats    models.DashboardStats   `json:"stats"`
	Activity []models.RecentActivity `json:"activity"`
}

// AdminService implements the back-office operations
type AdminService struct {
	store  AdminStore
	mailer Mailer
	now    func() time.Time
}

func NewAdminService(st AdminStore, mailer Mailer) *AdminService {
	return &AdminService{store: st, mailer: mailer, now: time.Now}
}

// Dashboard loads the stats and the activity feed concurrently
func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.DashboardStats(ctx)
		d.Stats = stats
		return err
	})
	g.Go(func() error {
		activity, err := s.RecentActivity(ctx)
		d.Activity = activity
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *AdminService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return models.DashboardStats{}, err
	}
	return models.DashboardStats{
		TotalClients:   156,
		ActiveClients:  142,
		TotalRevenue:   15680.50,
		MonthlyRevenue: 4250.00,
		TotalAnalyses:  3420,
		TodayAnalyses:  87,
	}, nil
}

func (s *AdminService) RecentActivity(ctx context.Context) ([]models.RecentActivity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()
	return []models.RecentActivity{
		{ID: "1", Type: "signup", Description: "Novo cadastro", Timestamp: now, ClientName: "Ana Paula"},
		{ID: "2", Type: "payment", Description: "Pagamento recebido - R$ 99,90", Timestamp: now.Add(-15 * time.Minute), ClientName: "João Silva"},
		{ID: "3", Type: "analysis", Description: "Análise de produto realizada", Timestamp: now.Add(-30 * time.Minute), ClientName: "Maria Santos"},
	}, nil
}

func (s *AdminService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.store.ListClients(ctx)
}

func (s *AdminService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.store.GetClient(ctx, id)
}

// UpdateClient merges the non-nil fields of upd into the client
func (s *AdminService) UpdateClient(ctx context.Context, id string, upd models.ClientUpdate) (*models.Client, error) {
	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(c)
	if err := s.store.SaveClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *AdminService) DeleteClient(ctx context.Context, id string) error {
	return s.store.DeleteClient(ctx, id)
}

// ToggleClientStatus flips a client between active and suspended
func (s *AdminService) ToggleClientStatus(ctx context.Context, id string) (*models.Client, error) {
	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == models.ClientActive {
		c.Status = models.ClientSuspended
	} else {
		c.Status = models.ClientActive
	}
	if err := s.store.SaveClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ResetClientPassword sends the recovery e-mail and returns the confirmation message
func (s *AdminService) ResetClientPassword(ctx context.Context, id string) (string, error) {
	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		return "", err
	}

	if s.mailer != nil {
		err := s.mailer.SendEmail(c.Name, c.Email, "Recuperação de senha - SocialBoost Vision",
			"Recebemos uma solicitação de redefinição de senha para sua conta.",
			"<p>Recebemos uma solicitação de <strong>redefinição de senha</strong> para sua conta.</p>")
		switch {
		case errors.Is(err, utils.ErrEmailDisabled):
			log.Printf("[Admin] E-mail disabled, recovery for %s not sent", c.Email)
		case err != nil:
			log.Printf("[Admin] Failed to send recovery e-mail to %s: %v", c.Email, err)
		}
	}
	return fmt.Sprintf("Email de recuperação enviado para %s", c.Email), nil
}

// CancelSubscription marks the client's subscription as cancelled
func (s *AdminService) CancelSubscription(ctx context.Context, clientID string) (string, error) {
	c, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		return "", err
	}
	if c.Subscription != nil {
		end := s.now()
		c.Subscription.Status = "cancelled"
		c.Subscription.EndDate = &end
		if err := s.store.SaveClient(ctx, c); err != nil {
			return "", err
		}
	}
	return "Assinatura cancelada com sucesso", nil
}

func (s *AdminService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.store.ListPayments(ctx)
}

func (s *AdminService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.store.GetPayment(ctx, id)
}

func (s *AdminService) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	p, err := s.store.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = status
	if err := s.store.SavePayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ProcessRefund refunds a payment once. A non-positive amount refunds the full charge.
func (s *AdminService) ProcessRefund(ctx context.Context, id string, amount float64) (string, error) {
	p, err := s.store.GetPayment(ctx, id)
	if err != nil {
		return "", err
	}
	if p.Status == models.PaymentRefunded {
		return "", ErrAlreadyRefunded
	}
	if amount <= 0 {
		amount = p.Amount
	}
	p.Status = models.PaymentRefunded
	if err := s.store.SavePayment(ctx, p); err != nil {
		return "", err
	}
	return fmt.Sprintf("Reembolso de R$ %.2f processado com sucesso", amount), nil
}

func (s *AdminService) GetSettings(ctx context.Context) (models.Settings, error) {
	return s.store.GetSettings(ctx)
}

// UpdateSettings replaces the settings; missing, non-numeric or zero limits fall back to the defaults
func (s *AdminService) UpdateSettings(ctx context.Context, form SettingsForm) (string, error) {
	defaults := models.DefaultSettings().Limits
	settings := models.Settings{
		GeminiKey: form.GeminiKey,
		OpenAIKey: form.OpenAIKey,
		Limits: models.PlanLimits{
			Free:  limitOrDefault(form.LimitFree, defaults.Free),
			Basic: limitOrDefault(form.LimitBasic, defaults.Basic),
			Pro:   limitOrDefault(form.LimitPro, defaults.Pro),
		},
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return "", err
	}

	log.Printf("[Admin] Settings updated: geminiKey=%s openaiKey=%s limits=%+v",
		maskKey(settings.GeminiKey), maskKey(settings.OpenAIKey), settings.Limits)
	return "Configurações salvas com sucesso!", nil
}

// DeleteKey clears geminiKey or openaiKey
func (s *AdminService) DeleteKey(ctx context.Context, name string) (string, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	switch name {
	case "geminiKey":
		settings.GeminiKey = ""
	case "openaiKey":
		settings.OpenAIKey = ""
	default:
		return "", ErrUnknownKey
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return "", err
	}
	return "Chave removida com sucesso!", nil
}

func limitOrDefault(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

func maskKey(key string) string {
	if key == "" {
		return "not set"
	}
	return "********"
}

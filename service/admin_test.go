package service

import (
	"context"
	"testing"
	"time"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/store"
	"github.com/socialboost/vision/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T, mailer Mailer) *AdminService {
	t.Helper()
	st, err := store.NewMemoryStore()
	require.NoError(t, err)
	s := NewAdminService(st, mailer)
	s.now = func() time.Time { return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestAdmin_Dashboard(t *testing.T) {
	s := newAdmin(t, nil)

	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 156, d.Stats.TotalClients)
	assert.Equal(t, 142, d.Stats.ActiveClients)
	assert.InDelta(t, 15680.50, d.Stats.TotalRevenue, 0.001)
	assert.Equal(t, 87, d.Stats.TodayAnalyses)

	require.Len(t, d.Activity, 3)
	assert.Equal(t, "Ana Paula", d.Activity[0].ClientName)
	assert.Equal(t, "Pagamento recebido - R$ 99,90", d.Activity[1].Description)
	assert.Equal(t, 15*time.Minute, d.Activity[0].Timestamp.Sub(d.Activity[1].Timestamp))
}

func TestAdmin_DashboardCancelled(t *testing.T) {
	s := newAdmin(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Dashboard(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdmin_UpdateClient(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()
	phone := "(31) 91234-5678"

	c, err := s.UpdateClient(ctx, "3", models.ClientUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, c.Phone)
	assert.Equal(t, "Pedro Costa", c.Name)

	_, err = s.UpdateClient(ctx, "42", models.ClientUpdate{Phone: &phone})
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

func TestAdmin_ToggleClientStatus(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()

	c, err := s.ToggleClientStatus(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, models.ClientActive, c.Status)

	c, err = s.ToggleClientStatus(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, models.ClientSuspended, c.Status)
}

func TestAdmin_DeleteClient(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()

	require.NoError(t, s.DeleteClient(ctx, "1"))
	clients, err := s.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	_, err = s.GetClient(ctx, "1")
	assert.EqualError(t, err, "Cliente não encontrado")
}

func TestAdmin_ResetClientPassword(t *testing.T) {
	mailer := &fakeMailer{}
	s := newAdmin(t, mailer)

	msg, err := s.ResetClientPassword(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Email de recuperação enviado para maria@example.com", msg)
	assert.Equal(t, []string{"maria@example.com"}, mailer.sent)
}

func TestAdmin_ResetClientPassword_EmailDisabled(t *testing.T) {
	s := newAdmin(t, &fakeMailer{err: utils.ErrEmailDisabled})

	msg, err := s.ResetClientPassword(context.Background(), "1")
	require.NoError(t, err)
	assert.Contains(t, msg, "joao@example.com")
}

func TestAdmin_CancelSubscription(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()

	msg, err := s.CancelSubscription(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Assinatura cancelada com sucesso", msg)

	c, err := s.GetClient(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", c.Subscription.Status)
	require.NotNil(t, c.Subscription.EndDate)
}

func TestAdmin_ProcessRefund(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()

	msg, err := s.ProcessRefund(ctx, "PAY001", 99.9)
	require.NoError(t, err)
	assert.Equal(t, "Reembolso de R$ 99.90 processado com sucesso", msg)

	p, err := s.GetPayment(ctx, "PAY001")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, p.Status)

	_, err = s.ProcessRefund(ctx, "PAY001", 99.9)
	assert.ErrorIs(t, err, ErrAlreadyRefunded)

	_, err = s.ProcessRefund(ctx, "PAY404", 1)
	assert.ErrorIs(t, err, store.ErrPaymentNotFound)
}

func TestAdmin_ProcessRefund_FullAmountByDefault(t *testing.T) {
	s := newAdmin(t, nil)

	msg, err := s.ProcessRefund(context.Background(), "PAY002", 0)
	require.NoError(t, err)
	assert.Equal(t, "Reembolso de R$ 49.90 processado com sucesso", msg)
}

func TestAdmin_UpdatePaymentStatus(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()

	p, err := s.UpdatePaymentStatus(ctx, "PAY003", models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, p.Status)

	_, err = s.UpdatePaymentStatus(ctx, "PAY003", "lost")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestAdmin_Settings(t *testing.T) {
	s := newAdmin(t, nil)
	ctx := context.Background()

	msg, err := s.UpdateSettings(ctx, SettingsForm{
		GeminiKey:  "g-key",
		OpenAIKey:  "",
		LimitFree:  "25",
		LimitBasic: "abc",
		LimitPro:   "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "Configurações salvas com sucesso!", msg)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "g-key", settings.GeminiKey)
	assert.Equal(t, models.PlanLimits{Free: 25, Basic: 100, Pro: 1000}, settings.Limits)

	msg, err = s.DeleteKey(ctx, "geminiKey")
	require.NoError(t, err)
	assert.Equal(t, "Chave removida com sucesso!", msg)

	settings, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.GeminiKey)

	_, err = s.DeleteKey(ctx, "awsKey")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

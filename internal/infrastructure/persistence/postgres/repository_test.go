package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
	"github.com/rafabene/dentalclinic-backend/internal/domain/valueobjects"
)

// newTestDB abre um SQLite em memória com o mesmo schema do PostgreSQL.
// Uma única conexão mantém o banco vivo entre as queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("falha ao abrir sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("falha ao obter sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("falha na migração: %v", err)
	}

	return db
}

func newUser(t *testing.T, username, email string, role entities.Role) *entities.User {
	t.Helper()

	mail, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("email inválido: %v", err)
	}

	return &entities.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     mail,
		Role:      role,
		FirstName: "Ana",
		LastName:  "Souza",
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("cria e busca por username sem diferenciar caixa", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newUser(t, "ana.souza", "ana@clinic.com", entities.RolePatient)

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("erro ao criar: %v", err)
		}

		found, err := repo.FindActiveByUsername(ctx, "ANA.SOUZA")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Fatalf("esperava encontrar o usuário %s, obteve %v", user.ID, found)
		}
		if found.Role != entities.RolePatient {
			t.Errorf("esperava role patient, obteve %s", found.Role)
		}
	})

	t.Run("registro ausente retorna nil sem erro", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		found, err := repo.FindActiveByID(ctx, uuid.NewString())
		if err != nil || found != nil {
			t.Errorf("esperava (nil, nil), obteve (%v, %v)", found, err)
		}
	})

	t.Run("username duplicado entre ativos vira ErrDuplicate", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if err := repo.Create(ctx, newUser(t, "ana", "ana@clinic.com", entities.RolePatient)); err != nil {
			t.Fatalf("erro ao criar: %v", err)
		}

		err := repo.Create(ctx, newUser(t, "ANA", "outra@clinic.com", entities.RolePatient))
		if !errors.Is(err, repositories.ErrDuplicate) {
			t.Errorf("esperava ErrDuplicate, obteve %v", err)
		}
	})

	t.Run("soft delete libera username e esconde das buscas ativas", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newUser(t, "ana", "ana@clinic.com", entities.RolePatient)
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("erro ao criar: %v", err)
		}

		if err := repo.SoftDelete(ctx, user.ID, time.Now().UTC()); err != nil {
			t.Fatalf("erro no soft delete: %v", err)
		}

		if found, _ := repo.FindActiveByID(ctx, user.ID); found != nil {
			t.Error("usuário deletado não deveria aparecer como ativo")
		}

		deleted, err := repo.FindByID(ctx, user.ID)
		if err != nil || deleted == nil || !deleted.IsDeleted || deleted.DeletedAt == nil {
			t.Fatalf("FindByID deveria retornar o registro deletado, obteve (%v, %v)", deleted, err)
		}

		if err := repo.Create(ctx, newUser(t, "ana", "ana@clinic.com", entities.RolePatient)); err != nil {
			t.Errorf("username de usuário deletado deveria estar livre: %v", err)
		}
	})

	t.Run("lista filtrando por role e paginando", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		for _, u := range []*entities.User{
			newUser(t, "p1", "p1@clinic.com", entities.RolePatient),
			newUser(t, "p2", "p2@clinic.com", entities.RolePatient),
			newUser(t, "d1", "d1@clinic.com", entities.RoleDentist),
		} {
			if err := repo.Create(ctx, u); err != nil {
				t.Fatalf("erro ao criar: %v", err)
			}
		}

		role := entities.RolePatient
		users, total, err := repo.List(ctx, repositories.UserFilters{Role: &role, Page: 1, PageSize: 1})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 2 {
			t.Errorf("esperava total 2, obteve %d", total)
		}
		if len(users) != 1 {
			t.Errorf("esperava 1 item na página, obteve %d", len(users))
		}
	})

	t.Run("atualiza fcm token", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := newUser(t, "ana", "ana@clinic.com", entities.RolePatient)
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("erro ao criar: %v", err)
		}

		if err := repo.UpdateFCMToken(ctx, user.ID, "device-123"); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		found, _ := repo.FindActiveByID(ctx, user.ID)
		if found.FCMToken == nil || *found.FCMToken != "device-123" {
			t.Errorf("esperava fcm token 'device-123', obteve %v", found.FCMToken)
		}
	})
}

func TestUnitOfWork_RollbackDesfazEscritas(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	uow := NewUnitOfWork(db)
	user := newUser(t, "ana", "ana@clinic.com", entities.RolePatient)

	boom := errors.New("boom")
	err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, user); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("esperava o erro da função, obteve %v", err)
	}

	if found, _ := repo.FindByID(ctx, user.ID); found != nil {
		t.Error("criação deveria ter sido desfeita pelo rollback")
	}
}

func TestUnitOfWork_TransacaoAninhadaReaproveitaAExterna(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	uow := NewUnitOfWork(db)
	first := newUser(t, "ana", "ana@clinic.com", entities.RolePatient)
	second := newUser(t, "bia", "bia@clinic.com", entities.RolePatient)

	boom := errors.New("boom")
	err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, first); err != nil {
			return err
		}
		if err := uow.WithTransaction(txCtx, func(inner context.Context) error {
			return repo.Create(inner, second)
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("esperava o erro da função, obteve %v", err)
	}

	for _, u := range []*entities.User{first, second} {
		if found, _ := repo.FindByID(ctx, u.ID); found != nil {
			t.Errorf("criação de %s deveria ter sido desfeita", u.Username)
		}
	}
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRefreshTokenRepository(newTestDB(t))

	token := &entities.RefreshToken{Token: "abc", UserID: uuid.NewString()}
	if err := repo.Create(ctx, token); err != nil {
		t.Fatalf("erro ao criar: %v", err)
	}
	if token.CreatedAt.IsZero() {
		t.Error("CreatedAt deveria ser preenchido")
	}

	found, err := repo.FindByToken(ctx, "abc")
	if err != nil || found == nil || found.UserID != token.UserID {
		t.Fatalf("esperava encontrar o token, obteve (%v, %v)", found, err)
	}

	if err := repo.DeleteByToken(ctx, "abc"); err != nil {
		t.Fatalf("erro ao deletar: %v", err)
	}
	if err := repo.DeleteByToken(ctx, "abc"); err != nil {
		t.Errorf("deletar duas vezes não deveria falhar: %v", err)
	}
	if found, _ := repo.FindByToken(ctx, "abc"); found != nil {
		t.Error("token deveria ter sido removido")
	}
}

func TestServiceAndCategoryRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	services := NewServiceRepository(db)
	categories := NewCategoryRepository(db)

	times := 3
	interval := entities.IntervalMonthly
	service := &entities.Service{
		ID:                  uuid.NewString(),
		Name:                "Limpeza",
		Price:               150,
		AllowInstallment:    true,
		InstallmentTimes:    &times,
		InstallmentInterval: &interval,
	}
	if err := services.Create(ctx, service); err != nil {
		t.Fatalf("erro ao criar serviço: %v", err)
	}

	category := &entities.Category{ID: uuid.NewString(), Name: "Preventivo"}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("erro ao criar categoria: %v", err)
	}

	t.Run("nome de serviço é único sem diferenciar caixa", func(t *testing.T) {
		found, err := services.FindActiveByName(ctx, "LIMPEZA")
		if err != nil || found == nil {
			t.Fatalf("esperava encontrar o serviço, obteve (%v, %v)", found, err)
		}

		err = services.Create(ctx, &entities.Service{ID: uuid.NewString(), Name: "limpeza"})
		if !errors.Is(err, repositories.ErrDuplicate) {
			t.Errorf("esperava ErrDuplicate, obteve %v", err)
		}
	})

	t.Run("link de categoria é substituído, nunca duplicado", func(t *testing.T) {
		other := &entities.Category{ID: uuid.NewString(), Name: "Estética"}
		if err := categories.Create(ctx, other); err != nil {
			t.Fatalf("erro ao criar categoria: %v", err)
		}

		if err := categories.SetServiceCategory(ctx, service.ID, &category.ID); err != nil {
			t.Fatalf("erro ao ligar: %v", err)
		}
		if err := categories.SetServiceCategory(ctx, service.ID, &other.ID); err != nil {
			t.Fatalf("erro ao religar: %v", err)
		}

		links, err := categories.ListLinks(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(links) != 1 || links[0].CategoryID != other.ID {
			t.Errorf("esperava um único link para %s, obteve %v", other.ID, links)
		}

		found, _ := services.FindActiveByID(ctx, service.ID)
		if found.CategoryID == nil || *found.CategoryID != other.ID {
			t.Errorf("serviço deveria carregar a categoria atual, obteve %v", found.CategoryID)
		}
		if found.InstallmentInterval == nil || *found.InstallmentInterval != entities.IntervalMonthly {
			t.Errorf("intervalo de parcelamento não foi preservado: %v", found.InstallmentInterval)
		}
	})

	t.Run("categoria nil apenas remove o link", func(t *testing.T) {
		if err := categories.SetServiceCategory(ctx, service.ID, nil); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		links, err := categories.ListLinks(ctx)
		if err != nil || len(links) != 0 {
			t.Errorf("esperava nenhum link, obteve (%v, %v)", links, err)
		}
	})

	t.Run("serviço deletado some da listagem ativa", func(t *testing.T) {
		if err := services.SoftDelete(ctx, service.ID, time.Now().UTC()); err != nil {
			t.Fatalf("erro no soft delete: %v", err)
		}

		active, err := services.ListActive(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		for _, s := range active {
			if s.ID == service.ID {
				t.Error("serviço deletado não deveria ser listado")
			}
		}
	})
}

func TestActivityLogRepository_OrdemMaisRecentePrimeiro(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(newTestDB(t))
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	for i, action := range []entities.ActivityAction{entities.ActionCreate, entities.ActionUpdate, entities.ActionDelete} {
		entry := &entities.ActivityLog{
			ID:        int64(i + 1),
			AdminID:   uuid.NewString(),
			Action:    action,
			TableName: "services",
			RecordID:  "svc-1",
			UndoData:  []byte(`{"name":"Limpeza"}`),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("erro ao criar log: %v", err)
		}
	}

	logs, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("esperava 2 logs, obteve %d", len(logs))
	}
	if logs[0].Action != entities.ActionDelete {
		t.Errorf("esperava DELETE primeiro, obteve %s", logs[0].Action)
	}
	if string(logs[0].UndoData) != `{"name":"Limpeza"}` {
		t.Errorf("undo data inesperado: %s", logs[0].UndoData)
	}
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(newTestDB(t))
	userID := uuid.NewString()
	otherID := uuid.NewString()

	for _, n := range []*entities.Notification{
		{ID: uuid.NewString(), UserID: &userID, Title: "Conta", Message: "Bem-vindo", Type: entities.NotificationAccount},
		{ID: uuid.NewString(), UserID: &otherID, Title: "Conta", Message: "Outro", Type: entities.NotificationAccount},
		{ID: uuid.NewString(), Title: "Novo serviço", Message: "Clareamento", Type: entities.NotificationService},
	} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("erro ao criar: %v", err)
		}
	}

	list, err := repo.ListForUser(ctx, userID, 50)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("esperava a própria notificação e o broadcast, obteve %d", len(list))
	}

	var own, broadcast *entities.Notification
	for _, n := range list {
		if n.IsBroadcast() {
			broadcast = n
		} else {
			own = n
		}
	}

	if ok, err := repo.MarkRead(ctx, own.ID, userID); err != nil || !ok {
		t.Errorf("esperava marcar como lida, obteve (%v, %v)", ok, err)
	}
	if ok, _ := repo.MarkRead(ctx, own.ID, otherID); ok {
		t.Error("outro usuário não deveria marcar a notificação")
	}
	if ok, _ := repo.MarkRead(ctx, broadcast.ID, userID); ok {
		t.Error("broadcast não deveria ser marcado por um usuário")
	}
}

func TestDentalModelRepository_UpsertSubstitui(t *testing.T) {
	ctx := context.Background()
	repo := NewDentalModelRepository(newTestDB(t))

	first := &entities.DentalModel{RecordID: "r-1", BeforeModelURL: "records/r-1/before/model.gltf", BeforeUploadedAt: time.Now().UTC()}
	if err := repo.UpsertBefore(ctx, first); err != nil {
		t.Fatalf("erro no primeiro upsert: %v", err)
	}

	bin := "records/r-1/before/model.bin"
	second := &entities.DentalModel{RecordID: "r-1", BeforeModelURL: "records/r-1/before/model.gltf", BeforeModelBinURL: &bin, BeforeUploadedAt: time.Now().UTC()}
	if err := repo.UpsertBefore(ctx, second); err != nil {
		t.Fatalf("erro no segundo upsert: %v", err)
	}

	found, err := repo.FindByRecordID(ctx, "r-1")
	if err != nil || found == nil {
		t.Fatalf("esperava encontrar o modelo, obteve (%v, %v)", found, err)
	}
	if found.BeforeModelBinURL == nil || *found.BeforeModelBinURL != bin {
		t.Errorf("esperava bin atualizado, obteve %v", found.BeforeModelBinURL)
	}

	missing, err := repo.FindByRecordID(ctx, "r-2")
	if err != nil || missing != nil {
		t.Errorf("esperava (nil, nil), obteve (%v, %v)", missing, err)
	}
}

package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
)

var _ = Describe("CatalogService", func() {
	var (
		e       *env
		ctx     context.Context
		adminID string
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		adminID = uuid.NewString()
	})

	createService := func(name string, categoryID *string) *entities.Service {
		view, err := e.catalog.CreateService(ctx, adminID, ServiceInput{Name: name, Price: 100, CategoryID: categoryID})
		Expect(err).NotTo(HaveOccurred())
		return view.Service
	}

	createCategory := func(name string) *entities.Category {
		category, err := e.catalog.CreateCategory(ctx, adminID, name)
		Expect(err).NotTo(HaveOccurred())
		return category
	}

	Describe("nomes únicos entre registros ativos", func() {
		It("rejeita serviço com nome igual sem diferenciar caixa", func() {
			createService("Limpeza", nil)

			_, err := e.catalog.CreateService(ctx, adminID, ServiceInput{Name: "LIMPEZA"})
			Expect(err).To(MatchError(apperrors.ErrServiceNameAlreadyExists))
		})

		It("aceita o nome de novo depois do soft delete", func() {
			service := createService("Limpeza", nil)
			_, err := e.catalog.DeleteService(ctx, adminID, service.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.catalog.CreateService(ctx, adminID, ServiceInput{Name: "limpeza"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejeita categoria com nome igual e aceita após soft delete", func() {
			category := createCategory("Estetica")

			_, err := e.catalog.CreateCategory(ctx, adminID, "ESTETICA")
			Expect(err).To(MatchError(apperrors.ErrCategoryNameAlreadyExists))

			_, err = e.catalog.DeleteCategory(ctx, adminID, category.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.catalog.CreateCategory(ctx, adminID, "estetica")
			Expect(err).NotTo(HaveOccurred())
		})

		It("edição mantendo o próprio nome não é conflito", func() {
			service := createService("Limpeza", nil)

			view, err := e.catalog.UpdateService(ctx, adminID, service.ID, ServiceInput{Name: "limpeza", Price: 120})
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Service.Price).To(Equal(120.0))
		})
	})

	Describe("validação", func() {
		It("exige parcelas válidas quando o parcelamento está ativo", func() {
			_, err := e.catalog.CreateService(ctx, adminID, ServiceInput{Name: "Aparelho", Price: 3000, AllowInstallment: true})
			Expect(err).To(MatchError(apperrors.ErrInvalidInstallment))
		})

		It("rejeita preço negativo", func() {
			_, err := e.catalog.CreateService(ctx, adminID, ServiceInput{Name: "Aparelho", Price: -1})
			Expect(err).To(MatchError(apperrors.ErrInvalidPrice))
		})

		It("rejeita categoria inexistente", func() {
			missing := uuid.NewString()
			_, err := e.catalog.CreateService(ctx, adminID, ServiceInput{Name: "Aparelho", CategoryID: &missing})
			Expect(err).To(MatchError(apperrors.ErrCategoryNotFound))
		})
	})

	Describe("soft delete", func() {
		It("some das listagens mas continua acessível por id", func() {
			category := createCategory("Preventivo")
			service := createService("Limpeza", &category.ID)

			_, err := e.catalog.DeleteService(ctx, adminID, service.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.catalog.DeleteCategory(ctx, adminID, category.ID)
			Expect(err).NotTo(HaveOccurred())

			services, err := e.catalog.ListServices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(BeEmpty())

			categories, err := e.catalog.ListCategories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(BeEmpty())

			groups, err := e.catalog.GroupServices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(BeEmpty())

			view, err := e.catalog.GetService(ctx, service.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Service.IsDeleted).To(BeTrue())

			deleted, err := e.catalog.GetCategory(ctx, category.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.IsDeleted).To(BeTrue())
		})

		It("não deleta duas vezes", func() {
			service := createService("Limpeza", nil)
			_, err := e.catalog.DeleteService(ctx, adminID, service.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.catalog.DeleteService(ctx, adminID, service.ID)
			Expect(err).To(MatchError(apperrors.ErrServiceNotFound))
		})
	})

	Describe("GroupServices", func() {
		It("agrupa por categoria e omite 'No Category' quando vazio", func() {
			a := createCategory("A")
			b := createCategory("B")
			createService("s2", &a.ID)
			createService("s1", &a.ID)

			groups, err := e.catalog.GroupServices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(HaveLen(2))
			Expect(groups[0].Category.ID).To(Equal(a.ID))
			Expect(serviceNames(groups[0].Services)).To(Equal([]string{"s1", "s2"}))
			Expect(groups[1].Category.ID).To(Equal(b.ID))
			Expect(groups[1].Services).To(BeEmpty())

			createService("s3", nil)

			groups, err = e.catalog.GroupServices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(HaveLen(3))
			Expect(groups[2].Name()).To(Equal(NoCategoryName))
			Expect(serviceNames(groups[2].Services)).To(Equal([]string{"s3"}))
		})

		It("religar um serviço o move de grupo sem duplicar", func() {
			a := createCategory("A")
			b := createCategory("B")
			service := createService("s1", &a.ID)

			_, err := e.catalog.UpdateService(ctx, adminID, service.ID, ServiceInput{Name: "s1", CategoryID: &b.ID})
			Expect(err).NotTo(HaveOccurred())

			groups, err := e.catalog.GroupServices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups[0].Services).To(BeEmpty())
			Expect(serviceNames(groups[1].Services)).To(Equal([]string{"s1"}))
		})
	})

	Describe("efeitos colaterais", func() {
		It("registra auditoria com o estado anterior", func() {
			service := createService("Limpeza", nil)
			_, err := e.catalog.UpdateService(ctx, adminID, service.ID, ServiceInput{Name: "Limpeza completa", Price: 200})
			Expect(err).NotTo(HaveOccurred())

			logs, err := e.audit.Recent(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(2))
			Expect(logs[0].Action).To(Equal(entities.ActionUpdate))
			Expect(logs[0].AdminID).To(Equal(adminID))

			var undo map[string]any
			Expect(json.Unmarshal(logs[0].UndoData, &undo)).To(Succeed())
			Expect(undo["name"]).To(Equal("Limpeza"))
		})

		It("falha da auditoria não falha a operação", func() {
			e.catalog.audit = NewActivityRecorder(failingActivityLogs{}, &sequenceIDs{}, e.catalog.logger)

			_, err := e.catalog.CreateCategory(ctx, adminID, "Preventivo")
			Expect(err).NotTo(HaveOccurred())
		})

		It("novo serviço gera broadcast", func() {
			createService("Clareamento", nil)

			messages := e.push.messages()
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].Topic).To(Equal(BroadcastTopic))
		})
	})
})

func serviceNames(services []*entities.Service) []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

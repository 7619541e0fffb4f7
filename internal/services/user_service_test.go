package services

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

var _ = Describe("UserService", func() {
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

	It("admin pode criar outro admin", func() {
		user, err := e.users.AddUser(ctx, adminID, newUserInput("gerente", entities.RoleAdmin))
		Expect(err).NotTo(HaveOccurred())
		Expect(user.IsAdmin()).To(BeTrue())
	})

	It("soft delete tira da listagem mas não da busca por id", func() {
		user := e.seedUser("paciente", entities.RolePatient)
		e.seedUser("dentista", entities.RoleDentist)

		_, err := e.users.DeleteUser(ctx, adminID, user.ID)
		Expect(err).NotTo(HaveOccurred())

		users, total, err := e.users.ListUsers(ctx, repositories.UserFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(int64(1)))
		Expect(users[0].Username).To(Equal("dentista"))

		found, err := e.users.GetUser(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.IsDeleted).To(BeTrue())
		Expect(found.DeletedAt).NotTo(BeNil())
	})

	It("soft delete remove a credencial e libera o email para novo cadastro", func() {
		user := e.seedUser("paciente", entities.RolePatient)

		_, err := e.users.DeleteUser(ctx, adminID, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.credentials.deleted).To(ConsistOf(user.ID))

		again, err := e.users.AddUser(ctx, adminID, newUserInput("paciente", entities.RolePatient))
		Expect(err).NotTo(HaveOccurred())
		Expect(again.ID).NotTo(Equal(user.ID))
		Expect(again.Email.String()).To(Equal(user.Email.String()))
	})

	It("filtra por papel", func() {
		e.seedUser("paciente", entities.RolePatient)
		e.seedUser("dentista", entities.RoleDentist)

		role := entities.RoleDentist
		users, _, err := e.users.ListUsers(ctx, repositories.UserFilters{Role: &role})
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(1))
		Expect(users[0].Role).To(Equal(entities.RoleDentist))
	})

	It("id malformado é não encontrado", func() {
		_, err := e.users.GetUser(ctx, "nao-e-uuid")
		Expect(err).To(MatchError(apperrors.ErrUserNotFound))
	})

	Describe("EditUser", func() {
		It("troca o email também no provedor de credenciais", func() {
			user := e.seedUser("paciente", entities.RolePatient)

			updated, err := e.users.EditUser(ctx, adminID, user.ID, ProfileInput{
				Username:  "paciente",
				Email:     "novo@clinic.test",
				Role:      entities.RolePatient,
				FirstName: "Ana",
				LastName:  "Lima",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.LastName).To(Equal("Lima"))

			cred, err := e.credentials.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(cred.Email).To(Equal("novo@clinic.test"))
		})

		It("rejeita username de outro usuário ativo", func() {
			e.seedUser("ana", entities.RolePatient)
			bia := e.seedUser("bia", entities.RolePatient)

			_, err := e.users.EditUser(ctx, adminID, bia.ID, ProfileInput{
				Username:  "Ana",
				Email:     "bia@clinic.test",
				Role:      entities.RolePatient,
				FirstName: "Bia",
				LastName:  "Souza",
			})
			Expect(err).To(MatchError(apperrors.ErrUsernameAlreadyExists))
		})
	})
})

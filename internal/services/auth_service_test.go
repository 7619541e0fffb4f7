package services

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

var _ = Describe("AuthService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	Describe("Register", func() {
		It("cria credencial e perfil com o mesmo id, sem senha no perfil", func() {
			user, err := e.auth.Register(ctx, newUserInput("ana.souza", entities.RolePatient))
			Expect(err).NotTo(HaveOccurred())

			cred, err := e.credentials.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(cred.Email).To(Equal("ana.souza@clinic.test"))
			Expect(user.Role).To(Equal(entities.RolePatient))
		})

		It("rejeita o papel admin no auto-cadastro", func() {
			_, err := e.auth.Register(ctx, newUserInput("root", entities.RoleAdmin))
			Expect(err).To(MatchError(apperrors.ErrInvalidRole))
			Expect(e.credentials.users).To(BeEmpty())
		})

		It("rejeita username já usado, sem diferenciar caixa", func() {
			e.seedUser("ana", entities.RolePatient)

			input := newUserInput("ANA", entities.RoleDentist)
			input.Email = "outra@clinic.test"
			_, err := e.auth.Register(ctx, input)
			Expect(err).To(MatchError(apperrors.ErrUsernameAlreadyExists))
		})

		It("rejeita email já usado", func() {
			e.seedUser("ana", entities.RolePatient)

			input := newUserInput("bia", entities.RolePatient)
			input.Email = "ANA@clinic.test"
			_, err := e.auth.Register(ctx, input)
			Expect(err).To(MatchError(apperrors.ErrEmailAlreadyExists))
		})

		It("remove a credencial quando o perfil não pode ser gravado", func() {
			e.auth.provisioner.userRepo = failingCreateUsers{UserRepository: e.auth.userRepo}

			_, err := e.auth.Register(ctx, newUserInput("ana", entities.RolePatient))
			Expect(apperrors.IsUpstream(err)).To(BeTrue())
			Expect(e.credentials.deleted).To(HaveLen(1))
			Expect(e.credentials.users).To(BeEmpty())
		})

		It("propaga falha do provedor sem gravar perfil", func() {
			e.credentials.createErr = apperrors.Upstream("auth.create_user", errors.New("boom"))

			_, err := e.auth.Register(ctx, newUserInput("ana", entities.RolePatient))
			Expect(apperrors.IsUpstream(err)).To(BeTrue())

			var count int64
			e.db.Table("users").Count(&count)
			Expect(count).To(BeZero())
		})
	})

	Describe("WebLogin", func() {
		It("emite token de 24h para admin", func() {
			admin := e.seedUser("admin", entities.RoleAdmin)

			result, err := e.auth.WebLogin(ctx, LoginInput{Username: "admin", Password: "s3cret-password"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RefreshToken).To(BeEmpty())

			identity, err := e.issuer.VerifyAccessToken(result.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.UserID).To(Equal(admin.ID))
			Expect(identity.Role).To(Equal(entities.RoleAdmin))
		})

		DescribeTable("papel fora do conjunto permitido é 403 com qualquer senha",
			func(role entities.Role, password string) {
				e.seedUser("paciente", role)
				calls := e.credentials.verifyCalls

				_, err := e.auth.WebLogin(ctx, LoginInput{Username: "paciente", Password: password})
				Expect(err).To(MatchError(apperrors.ErrRoleNotAllowed))
				Expect(e.credentials.verifyCalls).To(Equal(calls))
			},
			Entry("paciente com senha correta", entities.RolePatient, "s3cret-password"),
			Entry("paciente com senha errada", entities.RolePatient, "errada"),
			Entry("dentista com senha errada", entities.RoleDentist, "errada"),
		)

		It("username desconhecido é credencial inválida", func() {
			_, err := e.auth.WebLogin(ctx, LoginInput{Username: "ninguem", Password: "x"})
			Expect(err).To(MatchError(apperrors.ErrInvalidCredentials))
		})

		It("senha errada é credencial inválida", func() {
			e.seedUser("admin", entities.RoleAdmin)

			_, err := e.auth.WebLogin(ctx, LoginInput{Username: "admin", Password: "errada"})
			Expect(err).To(MatchError(apperrors.ErrInvalidCredentials))
		})
	})

	Describe("AppLogin, Refresh e Logout", func() {
		It("admin não entra pelo app", func() {
			e.seedUser("admin", entities.RoleAdmin)

			_, err := e.auth.AppLogin(ctx, LoginInput{Username: "admin", Password: "errada"})
			Expect(err).To(MatchError(apperrors.ErrRoleNotAllowed))
		})

		It("grava o fcm token e emite o par de tokens", func() {
			user := e.seedUser("dentista", entities.RoleDentist)
			fcm := "device-1"

			result, err := e.auth.AppLogin(ctx, LoginInput{Username: "dentista", Password: "s3cret-password", FCMToken: &fcm})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RefreshToken).To(HaveLen(128))

			stored, err := postgresUser(e, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.FCMToken).NotTo(BeNil())
			Expect(*stored.FCMToken).To(Equal("device-1"))
		})

		It("refresh token deixa de funcionar depois do logout", func() {
			e.seedUser("paciente", entities.RolePatient)
			result, err := e.auth.AppLogin(ctx, LoginInput{Username: "paciente", Password: "s3cret-password"})
			Expect(err).NotTo(HaveOccurred())

			access, err := e.auth.Refresh(ctx, result.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(access).NotTo(BeEmpty())

			Expect(e.auth.Logout(ctx, result.RefreshToken)).To(Succeed())
			Expect(e.auth.Logout(ctx, result.RefreshToken)).To(Succeed())

			_, err = e.auth.Refresh(ctx, result.RefreshToken)
			Expect(err).To(MatchError(apperrors.ErrInvalidRefreshToken))
		})

		It("refresh token expirado é rejeitado e removido", func() {
			e.seedUser("paciente", entities.RolePatient)
			result, err := e.auth.AppLogin(ctx, LoginInput{Username: "paciente", Password: "s3cret-password"})
			Expect(err).NotTo(HaveOccurred())

			e.auth.now = func() time.Time { return time.Now().UTC().Add(721 * time.Hour) }

			_, err = e.auth.Refresh(ctx, result.RefreshToken)
			Expect(err).To(MatchError(apperrors.ErrInvalidRefreshToken))

			var count int64
			e.db.Table("refresh_tokens").Count(&count)
			Expect(count).To(BeZero())
		})

		It("refresh de usuário deletado é rejeitado", func() {
			user := e.seedUser("paciente", entities.RolePatient)
			result, err := e.auth.AppLogin(ctx, LoginInput{Username: "paciente", Password: "s3cret-password"})
			Expect(err).NotTo(HaveOccurred())

			_, err = e.users.DeleteUser(ctx, "", user.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.auth.Refresh(ctx, result.RefreshToken)
			Expect(err).To(MatchError(apperrors.ErrInvalidRefreshToken))
		})
	})

	Describe("senhas", func() {
		It("troca a senha conferindo a atual", func() {
			user := e.seedUser("paciente", entities.RolePatient)

			err := e.auth.ChangePassword(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "errada", NewPassword: "nova-senha"})
			Expect(err).To(MatchError(apperrors.ErrInvalidCredentials))

			err = e.auth.ChangePassword(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "s3cret-password", NewPassword: "nova-senha"})
			Expect(err).NotTo(HaveOccurred())

			_, err = e.auth.AppLogin(ctx, LoginInput{Username: "paciente", Password: "nova-senha"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("nova senha igual à atual é rejeitada", func() {
			err := e.auth.ChangePassword(ctx, ChangePasswordInput{UserID: "x", CurrentPassword: "a", NewPassword: "a"})
			Expect(err).To(MatchError(apperrors.ErrSamePassword))
		})

		It("recuperação exige email de perfil ativo e usa o redirect configurado", func() {
			e.seedUser("paciente", entities.RolePatient)

			Expect(e.auth.ForgotPassword(ctx, "desconhecido@clinic.test")).To(MatchError(apperrors.ErrEmailNotRegistered))
			Expect(e.auth.ForgotPassword(ctx, "PACIENTE@clinic.test")).To(Succeed())
			Expect(e.credentials.resetEmails).To(ConsistOf("paciente@clinic.test"))
			Expect(e.credentials.redirectURL).To(Equal("https://app.clinic.test/reset"))
		})

		It("reset repassa o token do provedor", func() {
			Expect(e.auth.ResetPassword(ctx, "recovery-token", "nova")).To(Succeed())
			Expect(e.auth.ResetPassword(ctx, "outro", "nova")).To(MatchError(apperrors.ErrInvalidToken))
		})
	})
})

func postgresUser(e *env, id string) (*entities.User, error) {
	return e.auth.userRepo.FindByID(context.Background(), id)
}

// failingCreateUsers simula falha na gravação do perfil depois da credencial criada
type failingCreateUsers struct {
	repositories.UserRepository
}

func (failingCreateUsers) Create(context.Context, *entities.User) error {
	return errors.New("insert failed")
}

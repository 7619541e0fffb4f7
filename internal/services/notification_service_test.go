package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
)

var _ = Describe("NotificationService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	It("envia push para o aparelho registrado no login do app", func() {
		e.seedUser("paciente", entities.RolePatient)
		fcm := "device-9"
		result, err := e.auth.AppLogin(ctx, LoginInput{Username: "paciente", Password: "s3cret-password", FCMToken: &fcm})
		Expect(err).NotTo(HaveOccurred())

		e.notifier.NotifyUser(ctx, result.User.ID, entities.NotificationModel, "Modelo", "Novo modelo disponível")

		messages := e.push.messages()
		Expect(messages).NotTo(BeEmpty())
		Expect(messages[len(messages)-1].DeviceToken).To(Equal("device-9"))
	})

	It("lista próprias e broadcasts e marca apenas as próprias como lidas", func() {
		user := e.seedUser("paciente", entities.RolePatient)
		e.notifier.Broadcast(ctx, entities.NotificationService, "Novo", "Clareamento")

		list, err := e.notifier.List(ctx, user.ID, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))

		for _, n := range list {
			if n.IsBroadcast() {
				Expect(e.notifier.MarkRead(ctx, n.ID, user.ID)).To(MatchError(apperrors.ErrNotificationNotFound))
			} else {
				Expect(e.notifier.MarkRead(ctx, n.ID, user.ID)).To(Succeed())
			}
		}
	})
})

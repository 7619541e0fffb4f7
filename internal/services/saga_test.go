package services

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/logging"
)

var _ = Describe("Saga", func() {
	It("compensa os passos concluídos em ordem reversa", func() {
		var trail []string
		boom := errors.New("boom")

		do := func(name string, fail bool) func(context.Context) error {
			return func(context.Context) error {
				trail = append(trail, "do:"+name)
				if fail {
					return boom
				}
				return nil
			}
		}
		undo := func(name string) func(context.Context) error {
			return func(context.Context) error {
				trail = append(trail, "undo:"+name)
				return nil
			}
		}

		err := NewSaga(logging.Nop{}).
			Step("a", do("a", false), undo("a")).
			Step("b", do("b", false), undo("b")).
			Step("c", do("c", true), undo("c")).
			Execute(context.Background())

		Expect(err).To(MatchError(boom))
		Expect(trail).To(Equal([]string{"do:a", "do:b", "do:c", "undo:b", "undo:a"}))
	})

	It("falha na compensação não esconde o erro original", func() {
		boom := errors.New("boom")

		err := NewSaga(logging.Nop{}).
			Step("a", func(context.Context) error { return nil }, func(context.Context) error { return errors.New("undo failed") }).
			Step("b", func(context.Context) error { return boom }, nil).
			Execute(context.Background())

		Expect(err).To(MatchError(boom))
	})
})

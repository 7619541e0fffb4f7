package services

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

var _ = Describe("GroupByCategory", func() {
	categoryA := &entities.Category{ID: "a", Name: "a-category"}
	categoryB := &entities.Category{ID: "b", Name: "B-category"}

	It("ordena categorias e serviços sem diferenciar caixa", func() {
		groups := GroupByCategory(
			[]*entities.Category{categoryB, categoryA},
			[]*entities.Service{{ID: "2", Name: "beta"}, {ID: "1", Name: "Alpha"}},
			[]entities.CategoryLink{{ServiceID: "1", CategoryID: "a"}, {ServiceID: "2", CategoryID: "a"}},
		)

		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Name()).To(Equal("a-category"))
		Expect(serviceNames(groups[0].Services)).To(Equal([]string{"Alpha", "beta"}))
		Expect(groups[1].Name()).To(Equal("B-category"))
	})

	It("link para categoria ausente cai em 'No Category', no fim", func() {
		groups := GroupByCategory(
			[]*entities.Category{categoryA},
			[]*entities.Service{{ID: "1", Name: "s1"}, {ID: "2", Name: "s2"}},
			[]entities.CategoryLink{{ServiceID: "1", CategoryID: "deleted"}, {ServiceID: "2", CategoryID: "a"}},
		)

		Expect(groups).To(HaveLen(2))
		Expect(groups[1].Category).To(BeNil())
		Expect(groups[1].Name()).To(Equal(NoCategoryName))
		Expect(serviceNames(groups[1].Services)).To(Equal([]string{"s1"}))
	})

	It("serviço com vários links entra só no primeiro válido", func() {
		groups := GroupByCategory(
			[]*entities.Category{categoryA, categoryB},
			[]*entities.Service{{ID: "1", Name: "s1"}},
			[]entities.CategoryLink{{ServiceID: "1", CategoryID: "missing"}, {ServiceID: "1", CategoryID: "b"}, {ServiceID: "1", CategoryID: "a"}},
		)

		Expect(groups[0].Services).To(BeEmpty())
		Expect(serviceNames(groups[1].Services)).To(Equal([]string{"s1"}))
	})
})

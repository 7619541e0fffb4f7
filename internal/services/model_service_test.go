package services

import (
	"context"
	"errors"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
)

var _ = Describe("ModelService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	tmpFiles := func() []os.DirEntry {
		entries, err := os.ReadDir(e.tmpDir)
		Expect(err).NotTo(HaveOccurred())
		return entries
	}

	It("envia gltf e bin nas chaves do prontuário e limpa o temporário", func() {
		model, err := e.models.UploadBeforeModel(ctx, UploadInput{
			RecordID: "r-1",
			GLTF:     strings.NewReader(`{"asset":{}}`),
			Bin:      strings.NewReader("binary"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(model.BeforeModelURL).To(Equal("records/r-1/before/model.gltf"))
		Expect(e.objects.uploads).To(HaveKeyWithValue("records/r-1/before/model.gltf", `{"asset":{}}`))
		Expect(e.objects.uploads).To(HaveKeyWithValue("records/r-1/before/model.bin", "binary"))
		Expect(tmpFiles()).To(BeEmpty())
	})

	It("remove o temporário mesmo quando o upload falha", func() {
		e.objects.failKeys["records/r-1/before/model.gltf"] = apperrors.Upstream("storage.upload", errors.New("bucket down"))

		_, err := e.models.UploadBeforeModel(ctx, UploadInput{RecordID: "r-1", GLTF: strings.NewReader("{}")})
		Expect(apperrors.IsUpstream(err)).To(BeTrue())
		Expect(tmpFiles()).To(BeEmpty())

		_, err = e.models.GetModel(ctx, "r-1")
		Expect(err).To(MatchError(apperrors.ErrModelNotFound))
	})

	It("exige o arquivo gltf e um record_id seguro", func() {
		_, err := e.models.UploadBeforeModel(ctx, UploadInput{RecordID: "r-1"})
		Expect(err).To(MatchError(apperrors.ErrMissingFile))

		_, err = e.models.UploadBeforeModel(ctx, UploadInput{RecordID: "../x", GLTF: strings.NewReader("{}")})
		Expect(err).To(MatchError(apperrors.ErrInvalidRecordID))
	})

	It("assina URLs com TTL de 600s", func() {
		_, err := e.models.UploadBeforeModel(ctx, UploadInput{RecordID: "r-1", GLTF: strings.NewReader("{}")})
		Expect(err).NotTo(HaveOccurred())

		urls, err := e.models.GetModel(ctx, "r-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(urls.GLTFURL).To(Equal("https://storage.test/records/r-1/before/model.gltf?expires=600"))
		Expect(urls.BinURL).To(BeNil())
	})
})

package sql_test

import (
	"context"
	"time"

	"catalog-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("should return a usable ORM instance", func() {
			timeoutORM := orm.WithTimeout(ctx, 2*time.Second)
			gomega.Expect(timeoutORM).NotTo(gomega.BeNil())
		})

		ginkgo.It("should complete operations within the timeout", func() {
			type timeoutProbe struct {
				ID   uint `gorm:"primaryKey"`
				Name string
			}

			err := orm.AutoMigrate(&timeoutProbe{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var count int64
			err = orm.WithTimeout(ctx, 5*time.Second).Model(&timeoutProbe{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("error mapping", func() {
		ginkgo.It("should map a missing record to ErrRecordNotFound", func() {
			type missingProbe struct {
				ID   string `gorm:"primaryKey"`
				Name string
			}

			err := orm.AutoMigrate(&missingProbe{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var entity missingProbe
			err = orm.WithContext(ctx).First(&entity, "id = ?", "nope").Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})
	})

	ginkgo.Context("CRUD round trip", func() {
		ginkgo.It("should create and read back a record", func() {
			type crudProbe struct {
				ID   string `gorm:"primaryKey"`
				Name string
			}

			err := orm.AutoMigrate(&crudProbe{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = orm.WithContext(ctx).Create(&crudProbe{ID: "p1", Name: "probe"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var entity crudProbe
			err = orm.WithContext(ctx).First(&entity, "id = ?", "p1").Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(entity.Name).To(gomega.Equal("probe"))
		})
	})
})

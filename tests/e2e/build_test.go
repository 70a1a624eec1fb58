//go:build integration

package e2e

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/pc-builder/internal/converter"
	"github.com/you-humble/pc-builder/internal/model"
	partrepo "github.com/you-humble/pc-builder/internal/repository/part"
)

var _ = Describe("Catalog", func() {
	It("holds every bundled part after bootstrap", func() {
		seed, err := partrepo.SeedCatalog()
		Expect(err).NotTo(HaveOccurred())

		var want int64
		for _, items := range seed {
			want += int64(len(items))
		}

		n, err := partRepo.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(want))

		snap, err := catalog.Snapshot()
		Expect(err).NotTo(HaveOccurred())
		for _, c := range model.Categories {
			Expect(snap.Items(c)).To(HaveLen(len(seed[c])), c.String())
		}
	})

	It("filters stored parts by stock and brand", func() {
		all, err := partRepo.List(ctx, model.CategoryGPU, model.PartsFilter{IncludeOutOfStock: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).NotTo(BeEmpty())

		inStock, err := partRepo.List(ctx, model.CategoryGPU, model.PartsFilter{})
		Expect(err).NotTo(HaveOccurred())
		for _, it := range inStock {
			Expect(it.Base().InStock()).To(BeTrue())
		}

		brand := all[0].Base().Brand
		byBrand, err := partRepo.List(ctx, model.CategoryGPU, model.PartsFilter{
			Brand:             brand,
			IncludeOutOfStock: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(byBrand).NotTo(BeEmpty())
		for _, it := range byBrand {
			Expect(it.Base().Brand).To(BeEquivalentTo(brand))
		}
	})

	It("reads a single part with its category attributes", func() {
		want := all(model.CategoryCase)[0]

		got, err := partRepo.PartByID(ctx, want.Base().ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	})

	It("reloads after a catalog.updated event", func() {
		gpu := &model.GraphicsCard{
			Part: model.Part{
				ID:    "gpu-it-" + uuid.NewString(),
				Brand: "Sapphire",
				Name:  "Pulse RX 7800 XT",
				Price: 21999,
				Stock: model.Stock{Status: model.StockInStock, Quantity: 4},
			},
			Chip: "RX 7800 XT",
		}
		Expect(partRepo.CreateBatch(ctx, []model.Item{gpu})).To(Succeed())
		DeferCleanup(func() {
			_, err := mongoC.Collection(partsCollection).DeleteOne(ctx, bson.M{"_id": gpu.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(catalog.Load(ctx)).To(Succeed())
		})

		_, err := catalog.Part(ctx, gpu.ID)
		Expect(errors.Is(err, model.ErrPartNotFound)).To(BeTrue())

		payload, err := converter.NewKafkaConverter().CatalogUpdatedToPayload(model.CatalogUpdated{
			EventID:    uuid.New(),
			Categories: []model.Category{model.CategoryGPU},
			OccurredAt: time.Now().UTC(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(publish(topicCatalog, nil, payload)).To(Succeed())

		Eventually(func(g Gomega) {
			got, err := catalog.Part(ctx, gpu.ID)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got.Base().Name).To(Equal(gpu.Name))
		}).WithTimeout(15 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())
	})
})

var _ = Describe("Build session", func() {
	It("enforces compatibility while selecting", func() {
		b, err := builds.Create(ctx)
		Expect(err).NotTo(HaveOccurred())

		By("picking the first selectable motherboard")
		boards, err := builds.Candidates(ctx, b.ID, model.CategoryMotherboard, model.PartsFilter{HideIncompatible: true})
		Expect(err).NotTo(HaveOccurred())
		board := firstEnabled(boards)
		Expect(board).NotTo(BeNil())

		b, err = builds.Select(ctx, b.ID, model.CategoryMotherboard, board.Base().ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Selection.Motherboard).NotTo(BeNil())

		By("listing processors against the chosen board")
		cpus, err := builds.Candidates(ctx, b.ID, model.CategoryCPU, model.PartsFilter{IncludeOutOfStock: true})
		Expect(err).NotTo(HaveOccurred())

		var ok, bad model.Item
		for _, c := range cpus {
			switch {
			case c.Compatible && c.Item.Base().InStock() && ok == nil:
				ok = c.Item
			case !c.Compatible && bad == nil:
				bad = c.Item
			}
		}
		Expect(ok).NotTo(BeNil())
		Expect(bad).NotTo(BeNil(), "bundled catalog must hold a processor for another socket")

		_, err = builds.Select(ctx, b.ID, model.CategoryCPU, bad.Base().ID)
		Expect(errors.Is(err, model.ErrIncompatible)).To(BeTrue())

		b, err = builds.Select(ctx, b.ID, model.CategoryCPU, ok.Base().ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Selection.Count()).To(Equal(2))

		By("restoring the build from postgres")
		rec, err := buildRepo.BuildByID(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Selection).To(HaveKeyWithValue("cpu", ok.Base().ID))
		Expect(rec.Selection).To(HaveKeyWithValue("motherboard", board.Base().ID))

		b, err = builds.ClearAll(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Selection.Count()).To(BeZero())
	})

	It("checks out the cart and publishes build.checked_out", func() {
		b, err := builds.Create(ctx)
		Expect(err).NotTo(HaveOccurred())

		mouse := all(model.CategoryMouse)[0]
		keyboard := all(model.CategoryKeyboard)[0]

		_, err = builds.AddToCart(ctx, b.ID, model.CategoryMouse, mouse.Base().ID)
		Expect(err).NotTo(HaveOccurred())
		_, err = builds.AddToCart(ctx, b.ID, model.CategoryMouse, mouse.Base().ID)
		Expect(err).NotTo(HaveOccurred())
		b, err = builds.AddToCart(ctx, b.ID, model.CategoryKeyboard, keyboard.Base().ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Cart.Count()).To(Equal(3))

		ev, err := builds.Checkout(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(ev.Items).To(HaveLen(3))
		Expect(ev.Total).To(BeNumerically("~", 2*mouse.Base().Price+keyboard.Base().Price, 0.001))

		By("verifying the checkout row via direct SQL")
		var (
			gotBuild uuid.UUID
			gotTotal float64
		)
		err = pool.QueryRow(ctx,
			`SELECT build_id, total_try FROM checkouts WHERE event_id = $1`,
			ev.EventID,
		).Scan(&gotBuild, &gotTotal)
		Expect(err).NotTo(HaveOccurred())
		Expect(gotBuild).To(Equal(b.ID))
		Expect(gotTotal).To(BeNumerically("~", ev.Total, 0.001))

		after, err := builds.Build(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(after.Cart.Count()).To(BeZero())

		By("reading the published event")
		Eventually(func(g Gomega) {
			got, err := lastCheckout(b.ID)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got.EventID).To(Equal(ev.EventID))
			g.Expect(got.Items).To(HaveLen(3))
		}).WithTimeout(15 * time.Second).WithPolling(500 * time.Millisecond).Should(Succeed())

		_, err = builds.Checkout(ctx, b.ID)
		Expect(errors.Is(err, model.ErrCartEmpty)).To(BeTrue())
	})
})

func all(c model.Category) []model.Item {
	snap, err := catalog.Snapshot()
	Expect(err).NotTo(HaveOccurred())
	items := snap.Items(c)
	Expect(items).NotTo(BeEmpty())
	return items
}

func firstEnabled(cs []model.Candidate) model.Item {
	for _, c := range cs {
		if !c.Disabled {
			return c.Item
		}
	}
	return nil
}

func publish(topic string, key, value []byte) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Producer.Return.Successes = true

	p, err := sarama.NewSyncProducer(kafkaBrokers, cfg)
	if err != nil {
		return errors.Wrap(err, "sync producer")
	}
	defer p.Close()

	_, _, err = p.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	return errors.Wrap(err, "send")
}

// lastCheckout scans the checkout topic from the start and returns the last
// event keyed by buildID.
func lastCheckout(buildID uuid.UUID) (model.CartCheckedOut, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0

	c, err := sarama.NewConsumer(kafkaBrokers, cfg)
	if err != nil {
		return model.CartCheckedOut{}, errors.Wrap(err, "consumer")
	}
	defer c.Close()

	pc, err := c.ConsumePartition(topicCheckedOut, 0, sarama.OffsetOldest)
	if err != nil {
		return model.CartCheckedOut{}, errors.Wrap(err, "consume partition")
	}
	defer pc.Close()

	hwm := pc.HighWaterMarkOffset()
	conv := converter.NewKafkaConverter()

	var (
		found bool
		last  model.CartCheckedOut
	)
	for hwm > 0 {
		select {
		case msg := <-pc.Messages():
			if string(msg.Key) == string(buildID[:]) {
				ev, err := conv.CartCheckedOutToModel(msg.Value)
				if err != nil {
					return model.CartCheckedOut{}, err
				}
				last, found = ev, true
			}
			if msg.Offset+1 >= hwm {
				hwm = 0
			}
		case <-time.After(2 * time.Second):
			hwm = 0
		}
	}

	if !found {
		return model.CartCheckedOut{}, errors.Errorf("no checkout event for build %s", buildID)
	}
	return last, nil
}

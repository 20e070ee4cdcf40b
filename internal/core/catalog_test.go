package core_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"slangopedia/internal/core"
	"slangopedia/internal/core/fake"
	"slangopedia/internal/repository"
)

var _ = Describe("Catalog", func() {
	var (
		fakeSlangs *fake.SlangStore
		fakeUsers  *fake.UserStore
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		catalog *core.Catalog

		fakeErr error
	)

	BeforeEach(func() {
		fakeSlangs = new(fake.SlangStore)
		fakeUsers = new(fake.UserStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		catalog = core.NewCatalog(fakeLogger, fakeSlangs, fakeUsers)

		fakeErr = errors.New("fake error")
	})

	Describe("Create", func() {
		var (
			msg    core.SlangMessage
			record core.SlangRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.SlangMessage{
				Word:    "yeet",
				Meaning: "to throw with force",
				Example: "he yeeted the ball",
			}

			fakeSlangs.CreateSlangStub = func(_ context.Context, slang repository.Slang) (repository.Slang, error) {
				return slang, nil
			}
		})

		JustBeforeEach(func() {
			record, err = catalog.Create(ctx, "author-1", msg)
		})

		When("no category is given", func() {
			It("defaults the category to general", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Category).To(Equal("general"))
				Expect(record.CreatedBy).To(Equal("author-1"))
				Expect(record.ID).NotTo(BeEmpty())
				Expect(record.LikedBy).To(Equal([]string{}))

				Expect(fakeSlangs.CreateSlangCallCount()).To(Equal(1))
				_, argSlang := fakeSlangs.CreateSlangArgsForCall(0)
				Expect(argSlang.Word).To(Equal("yeet"))
				Expect(argSlang.Category).To(Equal("general"))
			})
		})

		When("a category is given", func() {
			BeforeEach(func() {
				msg.Category = "sports"
			})

			It("keeps the given category", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Category).To(Equal("sports"))
			})
		})

		When("the word already exists", func() {
			BeforeEach(func() {
				fakeSlangs.CreateSlangStub = nil
				fakeSlangs.CreateSlangReturns(repository.Slang{}, repository.ErrWordExists)
			})

			It("returns word exists error", func() {
				Expect(err).To(MatchError(core.ErrWordExists))
			})
		})
	})

	Describe("Get", func() {
		var (
			details core.SlangDetails
			err     error
		)

		BeforeEach(func() {
			fakeSlangs.GetSlangReturns(repository.Slang{
				ID:        "slang-1",
				Word:      "yeet",
				CreatedBy: "author-1",
				LikedBy:   []string{"user-2"},
				Likes:     1,
			}, nil)
			fakeUsers.GetUserByIDReturns(repository.User{
				ID:       "author-1",
				Username: "author",
			}, nil)
		})

		JustBeforeEach(func() {
			details, err = catalog.Get(ctx, "slang-1")
		})

		When("the entry exists", func() {
			It("resolves the author", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Word).To(Equal("yeet"))
				Expect(details.CreatedBy.ID).To(Equal("author-1"))
				Expect(details.CreatedBy.Username).To(Equal("author"))
				Expect(details.Likes).To(Equal(1))
			})
		})

		When("the author account is gone", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns the entry with the bare author id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details.CreatedBy.ID).To(Equal("author-1"))
				Expect(details.CreatedBy.Username).To(BeEmpty())
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeSlangs.GetSlangReturns(repository.Slang{}, repository.ErrSlangNotFound)
			})

			It("returns not found error", func() {
				Expect(err).To(MatchError(core.ErrSlangNotFound))
				Expect(fakeUsers.GetUserByIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("List", func() {
		var (
			query   core.ListQuery
			records []core.SlangRecord
			err     error
		)

		BeforeEach(func() {
			query = core.ListQuery{}
			fakeSlangs.ListSlangsReturns([]repository.Slang{
				{ID: "slang-1", Word: "yeet"},
				{ID: "slang-2", Word: "bet"},
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = catalog.List(ctx, query)
		})

		When("no paging is given", func() {
			It("applies the default page and limit", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				Expect(fakeSlangs.ListSlangsCallCount()).To(Equal(1))
				_, argFilter := fakeSlangs.ListSlangsArgsForCall(0)
				Expect(argFilter.Page).To(Equal(1))
				Expect(argFilter.Limit).To(Equal(20))
			})
		})

		When("search and paging are given", func() {
			BeforeEach(func() {
				query = core.ListQuery{Query: "ye", Category: "sports", Page: 3, Limit: 5}
			})

			It("passes them through", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argFilter := fakeSlangs.ListSlangsArgsForCall(0)
				Expect(argFilter.Query).To(Equal("ye"))
				Expect(argFilter.Category).To(Equal("sports"))
				Expect(argFilter.Page).To(Equal(3))
				Expect(argFilter.Limit).To(Equal(5))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeSlangs.ListSlangsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Update", func() {
		var (
			patch   core.SlangPatch
			record  core.SlangRecord
			err     error
			meaning string
		)

		BeforeEach(func() {
			meaning = "updated meaning"
			patch = core.SlangPatch{Meaning: &meaning}

			fakeSlangs.GetSlangReturns(repository.Slang{
				ID:        "slang-1",
				Word:      "yeet",
				Meaning:   "old meaning",
				CreatedBy: "author-1",
			}, nil)
			fakeSlangs.UpdateSlangReturns(nil)
		})

		JustBeforeEach(func() {
			record, err = catalog.Update(ctx, "slang-1", "author-1", patch)
		})

		When("the caller is the author", func() {
			It("applies only the patched fields", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Word).To(Equal("yeet"))
				Expect(record.Meaning).To(Equal("updated meaning"))

				Expect(fakeSlangs.UpdateSlangCallCount()).To(Equal(1))
				_, argSlang := fakeSlangs.UpdateSlangArgsForCall(0)
				Expect(argSlang.Meaning).To(Equal("updated meaning"))
				Expect(argSlang.Word).To(Equal("yeet"))
			})
		})

		When("the caller is not the author", func() {
			BeforeEach(func() {
				fakeSlangs.GetSlangReturns(repository.Slang{
					ID:        "slang-1",
					CreatedBy: "someone-else",
				}, nil)
			})

			It("refuses without touching the store", func() {
				Expect(err).To(MatchError(core.ErrNotAllowed))
				Expect(fakeSlangs.UpdateSlangCallCount()).To(Equal(0))
			})
		})

		When("the new word collides with another entry", func() {
			BeforeEach(func() {
				fakeSlangs.UpdateSlangReturns(repository.ErrWordExists)
			})

			It("returns word exists error", func() {
				Expect(err).To(MatchError(core.ErrWordExists))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeSlangs.GetSlangReturns(repository.Slang{}, repository.ErrSlangNotFound)
			})

			It("returns not found error", func() {
				Expect(err).To(MatchError(core.ErrSlangNotFound))
			})
		})
	})

	Describe("Delete", func() {
		var err error

		BeforeEach(func() {
			fakeSlangs.GetSlangReturns(repository.Slang{
				ID:        "slang-1",
				CreatedBy: "author-1",
			}, nil)
			fakeSlangs.DeleteSlangReturns(nil)
		})

		JustBeforeEach(func() {
			err = catalog.Delete(ctx, "slang-1", "author-1")
		})

		When("the caller is the author", func() {
			It("deletes the entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSlangs.DeleteSlangCallCount()).To(Equal(1))
				_, argId, argCaller := fakeSlangs.DeleteSlangArgsForCall(0)
				Expect(argId).To(Equal("slang-1"))
				Expect(argCaller).To(Equal("author-1"))
			})
		})

		When("the caller is not the author", func() {
			BeforeEach(func() {
				fakeSlangs.GetSlangReturns(repository.Slang{
					ID:        "slang-1",
					CreatedBy: "someone-else",
				}, nil)
			})

			It("refuses without touching the store", func() {
				Expect(err).To(MatchError(core.ErrNotAllowed))
				Expect(fakeSlangs.DeleteSlangCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ToggleLike", func() {
		var (
			likes int
			err   error
		)

		JustBeforeEach(func() {
			likes, err = catalog.ToggleLike(ctx, "slang-1", "user-1")
		})

		When("the toggle succeeds", func() {
			BeforeEach(func() {
				fakeSlangs.ToggleLikeReturns(3, nil)
			})

			It("returns the new like count", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(likes).To(Equal(3))

				_, argSlangId, argUserId := fakeSlangs.ToggleLikeArgsForCall(0)
				Expect(argSlangId).To(Equal("slang-1"))
				Expect(argUserId).To(Equal("user-1"))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeSlangs.ToggleLikeReturns(0, repository.ErrSlangNotFound)
			})

			It("returns not found error", func() {
				Expect(err).To(MatchError(core.ErrSlangNotFound))
			})
		})
	})

	Describe("ToggleFavorite", func() {
		var (
			favorites []string
			err       error
		)

		JustBeforeEach(func() {
			favorites, err = catalog.ToggleFavorite(ctx, "user-1", "slang-1")
		})

		When("the toggle succeeds", func() {
			BeforeEach(func() {
				fakeUsers.ToggleFavoriteReturns([]string{"slang-1"}, nil)
			})

			It("returns the favorites list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(favorites).To(Equal([]string{"slang-1"}))

				_, argUserId, argSlangId := fakeUsers.ToggleFavoriteArgsForCall(0)
				Expect(argUserId).To(Equal("user-1"))
				Expect(argSlangId).To(Equal("slang-1"))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeUsers.ToggleFavoriteReturns(nil, repository.ErrSlangNotFound)
			})

			It("returns not found error", func() {
				Expect(err).To(MatchError(core.ErrSlangNotFound))
			})
		})
	})
})

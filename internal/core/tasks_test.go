package core_test

import (
	"context"
	"errors"

	"taskboard/internal/core"
	"taskboard/internal/core/fake"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Board tasks", func() {
	var (
		fakeRepo *fake.Repository
		board    *core.Board
		ctx      context.Context
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		board = core.NewBoard(zap.NewNop().Sugar(), fakeRepo, new(fake.JWTIssuer), core.DefaultTokenTTL)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("ListTasks", func() {
		var (
			records []core.TaskRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = board.ListTasks(ctx)
		})

		When("tasks have assignees", func() {
			var aliceID string

			BeforeEach(func() {
				aliceID = uuid.NewString()
				dangling := uuid.NewString()
				fakeRepo.GetTasksReturns([]repository.Task{
					{ID: "t1", Title: "Build Login", Status: repository.StatusCompleted, AssignedTo: &aliceID,
						Assignee: &repository.Employee{ID: aliceID, Name: "Alice Johnson"}},
					{ID: "t2", Title: "Orphan", Status: repository.StatusPending, AssignedTo: &dangling},
					{ID: "t3", Title: "Unassigned", Status: repository.StatusPending},
				}, nil)
			})

			It("should expand known assignees only", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(3))
				Expect(records[0].Assignee).NotTo(BeNil())
				Expect(records[0].Assignee.Name).To(Equal("Alice Johnson"))
				Expect(records[1].Assignee).To(BeNil())
				Expect(records[1].AssignedTo).NotTo(BeNil())
				Expect(records[2].Assignee).To(BeNil())
				Expect(records[2].AssignedTo).To(BeNil())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTasksReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListEmployees", func() {
		It("should map every employee", func() {
			fakeRepo.GetEmployeesReturns([]repository.Employee{
				{ID: "e1", Name: "Alice Johnson", Role: "Frontend Dev", Email: "alice@prou.com"},
			}, nil)

			records, err := board.ListEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(Equal([]core.EmployeeRecord{
				{ID: "e1", Name: "Alice Johnson", Role: "Frontend Dev", Email: "alice@prou.com"},
			}))
		})
	})

	Describe("ListEmployeeTasks", func() {
		It("should query by assignee", func() {
			fakeRepo.GetTasksByAssigneeReturns([]repository.Task{{ID: "t1"}}, nil)

			records, err := board.ListEmployeeTasks(ctx, "e1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			_, id := fakeRepo.GetTasksByAssigneeArgsForCall(0)
			Expect(id).To(Equal("e1"))
		})

		It("should return an empty list for an unknown employee", func() {
			fakeRepo.GetTasksByAssigneeReturns([]repository.Task{}, nil)

			records, err := board.ListEmployeeTasks(ctx, uuid.NewString())
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})
	})

	Describe("CreateTask", func() {
		var (
			draft  core.TaskDraft
			record core.TaskRecord
			err    error
		)

		BeforeEach(func() {
			draft = core.TaskDraft{Title: "Design DB"}
			fakeRepo.CreateTaskStub = func(_ context.Context, task repository.Task) (repository.Task, error) {
				return task, nil
			}
		})

		JustBeforeEach(func() {
			record, err = board.CreateTask(ctx, draft)
		})

		When("only a title is given", func() {
			It("should default to Pending with no assignee", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(repository.StatusPending))
				Expect(record.Description).To(BeEmpty())
				Expect(record.AssignedTo).To(BeNil())
				Expect(uuid.Validate(record.ID)).To(Succeed())
			})
		})

		When("the assignee is an empty string", func() {
			BeforeEach(func() {
				empty := ""
				draft.AssignedTo = &empty
			})

			It("should store it as null", func() {
				Expect(err).NotTo(HaveOccurred())
				_, task := fakeRepo.CreateTaskArgsForCall(0)
				Expect(task.AssignedTo).To(BeNil())
			})
		})

		When("the assignee is set", func() {
			BeforeEach(func() {
				id := uuid.NewString()
				draft.AssignedTo = &id
				draft.Status = repository.StatusInProgress
			})

			It("should keep it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.AssignedTo).To(Equal(draft.AssignedTo))
				Expect(record.Status).To(Equal(repository.StatusInProgress))
			})
		})

		When("the status is unknown", func() {
			BeforeEach(func() {
				draft.Status = "Blocked"
			})

			It("should return ErrInvalidStatus", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.CreateTaskCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateTaskStub = nil
				fakeRepo.CreateTaskReturns(repository.Task{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateTask", func() {
		var (
			patch  core.TaskPatch
			record core.TaskRecord
			err    error
		)

		BeforeEach(func() {
			status := repository.StatusCompleted
			patch = core.TaskPatch{Status: &status}
			fakeRepo.UpdateTaskReturns(repository.Task{ID: "t1", Status: repository.StatusCompleted}, nil)
		})

		JustBeforeEach(func() {
			record, err = board.UpdateTask(ctx, "t1", patch)
		})

		When("only the status changes", func() {
			It("should send only the status column", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(repository.StatusCompleted))

				_, id, fields := fakeRepo.UpdateTaskArgsForCall(0)
				Expect(id).To(Equal("t1"))
				Expect(fields).To(Equal(map[string]any{"status": repository.StatusCompleted}))
			})
		})

		When("the assignee is cleared", func() {
			BeforeEach(func() {
				title := "Renamed"
				patch = core.TaskPatch{Title: &title, AssignedToSet: true}
			})

			It("should set assigned_to to nil", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, fields := fakeRepo.UpdateTaskArgsForCall(0)
				Expect(fields).To(HaveKeyWithValue("title", "Renamed"))
				Expect(fields).To(HaveKey("assigned_to"))
				Expect(fields["assigned_to"]).To(BeNil())
			})
		})

		When("the status is unknown", func() {
			BeforeEach(func() {
				status := "Done"
				patch = core.TaskPatch{Status: &status}
			})

			It("should return ErrInvalidStatus", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.UpdateTaskCallCount()).To(Equal(0))
			})
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateTaskReturns(repository.Task{}, repository.ErrTaskNotFound)
			})

			It("should return ErrTaskNotFound", func() {
				Expect(err).To(MatchError(core.ErrTaskNotFound))
			})
		})
	})

	Describe("DeleteTask", func() {
		It("should delete by id", func() {
			Expect(board.DeleteTask(ctx, "t1")).To(Succeed())
			_, id := fakeRepo.DeleteTaskArgsForCall(0)
			Expect(id).To(Equal("t1"))
		})

		It("should map a missing task", func() {
			fakeRepo.DeleteTaskReturns(repository.ErrTaskNotFound)
			Expect(board.DeleteTask(ctx, "t1")).To(MatchError(core.ErrTaskNotFound))
		})

		It("should wrap other failures", func() {
			fakeRepo.DeleteTaskReturns(fakeErr)
			err := board.DeleteTask(ctx, "t1")
			Expect(err).To(MatchError(fakeErr))
			Expect(err).NotTo(MatchError(core.ErrTaskNotFound))
		})
	})
})

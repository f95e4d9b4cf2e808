package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gorilla/mux"

	"github.com/monetaio/moneta/api/client"
	. "github.com/monetaio/moneta/api/client/matchers"
	"github.com/monetaio/moneta/api/types"
)

var _ = Describe("Finance API", func() {
	const (
		TEST_USER  = "jane@example.com"
		TEST_PASS  = "secret"
		TEST_TOKEN = "test-session-token"
	)

	var (
		server     *httptest.Server
		cli        *client.APIClient
		requests   int
		containers []types.AccountContainer
		bodies     []string
		nextID     int
	)

	categories := []types.Category{
		{ID: "1", Name: "Groceries"},
		{ID: "2", Name: "Salary"},
	}

	newID := func() string {
		id := strconv.Itoa(nextID)
		nextID++
		return id
	}

	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}

	writeError := func(w http.ResponseWriter, status int, message string) {
		writeJSON(w, status, types.Message{Message: message})
	}

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+TEST_TOKEN {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return false
		}
		return true
	}

	findContainer := func(id string) (types.AccountContainer, bool) {
		for _, c := range containers {
			if c.ID == id {
				return c, true
			}
		}
		return types.AccountContainer{}, false
	}

	BeforeEach(func() {
		requests = 0
		nextID = 1
		containers = nil
		bodies = nil

		router := mux.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
				next.ServeHTTP(w, r)
			})
		})

		router.HandleFunc("/user/login", func(w http.ResponseWriter, r *http.Request) {
			var req types.LoginRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Username != TEST_USER || req.Password != TEST_PASS {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			writeJSON(w, http.StatusOK, types.LoginResponse{Username: req.Username, Token: TEST_TOKEN})
		}).Methods("POST")

		router.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
			var req types.CreateUserRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Username == TEST_USER {
				writeError(w, http.StatusConflict, "user already exists")
				return
			}
			writeJSON(w, http.StatusCreated, types.Message{Message: "Registration successful"})
		}).Methods("POST")

		router.HandleFunc("/account-container", func(w http.ResponseWriter, r *http.Request) {
			if !authorized(w, r) {
				return
			}
			switch r.Method {
			case http.MethodGet:
				writeJSON(w, http.StatusOK, containers)
			case http.MethodPost:
				raw, _ := io.ReadAll(r.Body)
				bodies = append(bodies, string(raw))

				var req types.CreateAccountContainerRequest
				json.Unmarshal(raw, &req)

				created := types.AccountContainer{ID: newID(), Name: req.Name}
				for _, a := range req.Accounts {
					created.Accounts = append(created.Accounts, types.Account{
						ID:          newID(),
						Name:        a.Name,
						AccountType: a.AccountType,
						Currency:    a.Currency,
						Balance:     a.InitialBalance,
					})
				}
				containers = append(containers, created)
				writeJSON(w, http.StatusCreated, created)
			}
		}).Methods("GET", "POST")

		router.HandleFunc("/account-container/{id}/accounts", func(w http.ResponseWriter, r *http.Request) {
			if !authorized(w, r) {
				return
			}
			c, ok := findContainer(mux.Vars(r)["id"])
			if !ok {
				writeError(w, http.StatusNotFound, "no such account container")
				return
			}
			writeJSON(w, http.StatusOK, c.Accounts)
		}).Methods("GET")

		router.HandleFunc("/category", func(w http.ResponseWriter, r *http.Request) {
			if !authorized(w, r) {
				return
			}
			writeJSON(w, http.StatusOK, categories)
		}).Methods("GET")

		router.HandleFunc("/transaction", func(w http.ResponseWriter, r *http.Request) {
			if !authorized(w, r) {
				return
			}
			var req types.CreateTransactionRequest
			json.NewDecoder(r.Body).Decode(&req)
			writeJSON(w, http.StatusCreated, types.Transaction{
				ID:          newID(),
				AccountID:   req.AccountID,
				CategoryID:  req.CategoryID,
				Amount:      req.Amount,
				Description: req.Description,
				BookingDate: req.BookingDate,
			})
		}).Methods("POST")

		server = httptest.NewServer(router)

		var err error
		cli, err = client.NewAPIClient(server.URL, TEST_TOKEN, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		cli = cli.WithPolicy(client.Backoff(1))
	})

	AfterEach(func() {
		server.Close()
	})

	createContainer := func(name string, accounts ...types.NewAccount) types.AccountContainer {
		created, err := cli.CreateAccountContainer(context.Background(),
			types.CreateAccountContainerRequest{Name: name, Accounts: accounts})
		Expect(err).NotTo(HaveOccurred())
		return created
	}

	checking := types.NewAccount{Name: "Checking", AccountType: types.AccountTypeChecking, Currency: "EUR", InitialBalance: 250}
	savings := types.NewAccount{Name: "Savings", AccountType: types.AccountTypeSavings, Currency: "EUR"}

	Describe("Login", func() {
		It("should return the username and a session token", func() {
			anonymous, err := client.NewAPIClient(server.URL, "", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			res, err := anonymous.Login(context.Background(), TEST_USER, TEST_PASS)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Username).To(Equal(TEST_USER))
			Expect(res.Token).To(Equal(TEST_TOKEN))
		})

		It("should fail with wrong credentials", func() {
			anonymous, err := client.NewAPIClient(server.URL, "", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = anonymous.Login(context.Background(), TEST_USER, "wrong")
			Expect(err).To(BeUnauthorized{})
		})
	})

	Describe("Registration", func() {
		It("should return the server's welcome message", func() {
			anonymous, err := client.NewAPIClient(server.URL, "", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			msg, err := anonymous.CreateUser(context.Background(), "new@example.com", "pw")
			Expect(err).NotTo(HaveOccurred())
			Expect(msg).To(Equal("Registration successful"))
		})

		It("should surface a duplicate user as an API error", func() {
			anonymous, err := client.NewAPIClient(server.URL, "", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = anonymous.CreateUser(context.Background(), TEST_USER, "pw")
			Expect(err).To(BeAPIError(http.StatusConflict))
			Expect(err.Error()).To(Equal("user already exists"))
		})
	})

	Describe("Account containers", func() {
		It("should create a container with its accounts", func() {
			created := createContainer("Personal Finances", checking, savings)
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Name).To(Equal("Personal Finances"))
			Expect(created.Accounts).To(HaveLen(2))
			Expect(created.Accounts[0].Name).To(Equal("Checking"))
			Expect(created.Accounts[0].Balance).To(Equal(250.0))
			Expect(created.Accounts[1].Balance).To(BeZero())
		})

		It("should send the expected request body", func() {
			_, err := cli.CreateAccountContainer(context.Background(), types.CreateAccountContainerRequest{
				Name: "Personal Finances",
				Accounts: []types.NewAccount{
					{Name: "Checking", AccountType: types.AccountTypeChecking, Currency: "EUR", InitialBalance: 100},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(HaveLen(1))
			Expect(bodies[0]).To(MatchJSON(`{
				"name": "Personal Finances",
				"accounts": [
					{"name": "Checking", "accountType": "CHECKING", "currency": "EUR", "initialBalance": 100}
				]
			}`))
		})

		It("should reject an invalid container without sending it", func() {
			before := requests
			_, err := cli.CreateAccountContainer(context.Background(),
				types.CreateAccountContainerRequest{Name: "Empty"})
			Expect(err).To(MatchError(types.ValidationError("a container needs at least one account")))
			Expect(requests).To(Equal(before))
		})

		It("should list the containers of the user", func() {
			createContainer("First", checking)
			createContainer("Second", savings)

			list, err := cli.GetAccountContainers(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].Name).To(Equal("First"))
			Expect(list[1].Name).To(Equal("Second"))
		})

		It("should list the accounts of one container", func() {
			created := createContainer("Personal Finances", checking, savings)

			accounts, err := cli.GetAccounts(context.Background(), created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(HaveLen(2))
			Expect(accounts[0].AccountType).To(Equal(types.AccountTypeChecking))
			Expect(accounts[1].AccountType).To(Equal(types.AccountTypeSavings))
		})

		It("should fail for an unknown container", func() {
			_, err := cli.GetAccounts(context.Background(), "999")
			Expect(err).To(BeAPIError(http.StatusNotFound))
		})
	})

	Describe("Transactions", func() {
		It("should list the categories", func() {
			list, err := cli.GetCategories(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(Equal(categories))
		})

		It("should record a transaction", func() {
			created, err := cli.CreateTransaction(context.Background(), types.CreateTransactionRequest{
				AccountID:   "1",
				CategoryID:  "2",
				Amount:      -42.5,
				Description: "weekly shopping",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Amount).To(Equal(-42.5))
			Expect(created.Description).To(Equal("weekly shopping"))
		})

		It("should not submit a transaction without a category", func() {
			before := requests
			_, err := cli.CreateTransaction(context.Background(), types.CreateTransactionRequest{
				AccountID: "1",
				Amount:    5,
			})
			Expect(err).To(MatchError(types.ValidationError("a category is required")))
			Expect(requests).To(Equal(before))
		})
	})

	Describe("Session expiry", func() {
		It("should reject a stale token without retrying", func() {
			stale, err := client.NewAPIClient(server.URL, "expired", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			before := requests
			_, err = stale.GetAccountContainers(context.Background())
			Expect(err).To(BeUnauthorized{})
			Expect(client.IsUnauthorized(err)).To(BeTrue())
			Expect(requests).To(Equal(before + 1))
		})
	})
})

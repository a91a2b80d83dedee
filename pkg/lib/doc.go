// Package lib provides a Go SDK for the tasks and bugs assigned to a Zentao user.
//
// Zentao has no usable API for this, so the client reads the same HTML pages the
// browser shows, authenticated with the session cookie copied from the browser.
//
// # Quick Start
//
//	client, err := lib.New(lib.Config{
//	    Credentials: lib.Credentials{
//	        BaseURL:   "https://zentao.example.com/zentao",
//	        SessionID: "<zentaosid cookie value>",
//	        Username:  "jdoe",
//	        Password:  "<password>",
//	    },
//	    AutoRelogin: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tasks, err := client.FetchTaskList(ctx, &lib.ListOpts{Sort: lib.SortDateAsc})
//	bug, err := client.FetchBugDetail(ctx, "31")
//
// # Sessions
//
// Zentao answers an expired session with a redirect to the login page. The
// client reports it as [ErrSessionExpired]. [Client.ReLoginUser] logs in again
// with the configured password, and with [Config].AutoRelogin the client does it
// by itself and retries the operation once.
//
// # Finishing tasks
//
// [Client.FinishTask] fills the values that are not set from the task and its
// finish form. The consumed hours default to the task estimate, the start to the
// estimated start at 09:00 and the finish date is calculated with 8 hour workdays
// between 09:00 and 18:00.
//
// # Errors
//
// The SDK returns these sentinel errors, check them with [errors.Is]:
//
//   - [ErrSessionExpired]: the session cookie is no longer valid.
//   - [ErrNotValid]: invalid input or credentials.
//   - [ErrDocumentUnrecognized]: Zentao answered with a page that is not the expected one.
//
// Login and submission problems are returned as [*LoginFailedError],
// [*LoginResponseParseError], [*SessionRefreshError] and [*SubmissionFailedError],
// and non 2xx answers as [*TransportError]. Check them with [errors.As].
package lib

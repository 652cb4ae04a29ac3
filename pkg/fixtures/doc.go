// Package fixtures prepares the GitHub Actions runtime a release-notes action
// expects: runner environment variables, output files, a simulated workspace
// seeded from the sample changelog sets, commit SHAs and event payloads.
//
// A Session is created once per test binary, usually from TestMain:
//
//	var session *fixtures.Session
//
//	func TestMain(m *testing.M) {
//		var err error
//		if session, err = fixtures.NewSession(); err != nil {
//			log.Fatal(err)
//		}
//		os.Exit(m.Run())
//	}
//
// Each test then asks for a Fixture and calls the setups it needs. Every
// setup is undone when the test finishes, pass or fail:
//
//	func TestRelease(t *testing.T) {
//		fixtures.EachChangelogSet(t, session, func(t *testing.T, f *fixtures.Fixture, set *entities.ChangelogSet) {
//			f.GitHubOutputFile()
//			f.DummyCommit()
//			// run the action against f.Config
//		})
//	}
//
// Fixtures override environment variables with t.Setenv, so tests using them
// cannot call t.Parallel.
package fixtures

package groups

func key(name string) KeySpec { return KeySpec{Name: name} }

func sorted(name, method string) KeySpec { return KeySpec{Name: name, Sort: method} }

// Default returns the built-in package.json layout.
func Default() Layout {
	return Layout{Groups: []GroupSpec{
		{
			Name: "meta",
			Keys: []KeySpec{
				key("name"),
				key("displayName"),
				key("version"),
				key("private"),
				key("description"),
				sorted("keywords", MethodAlphabetical),
				key("homepage"),
				key("bugs"),
				key("repository"),
				key("funding"),
				key("license"),
				key("author"),
				sorted("contributors", MethodContributors),
				sorted("maintainers", MethodContributors),
			},
		},
		{
			Name: "entry",
			Keys: []KeySpec{
				key("type"),
				key("main"),
				key("module"),
				key("browser"),
				key("types"),
				key("typings"),
				key("exports"),
				key("imports"),
				key("bin"),
				key("man"),
				key("directories"),
				sorted("files", MethodAlphabetical),
				key("workspaces"),
			},
		},
		{
			Name: "scripts",
			Keys: []KeySpec{
				key("scripts"),
				key("config"),
			},
		},
		{
			Name: "dependencies",
			Keys: []KeySpec{
				sorted("dependencies", MethodAlphabetical),
				sorted("devDependencies", MethodAlphabetical),
				sorted("peerDependencies", MethodAlphabetical),
				sorted("peerDependenciesMeta", MethodAlphabetical),
				sorted("optionalDependencies", MethodAlphabetical),
				sorted("bundledDependencies", MethodAlphabetical),
				sorted("overrides", MethodAlphabetical),
				sorted("resolutions", MethodAlphabetical),
			},
		},
		{
			Name: "environment",
			Keys: []KeySpec{
				sorted("engines", MethodAlphabetical),
				key("os"),
				key("cpu"),
				key("packageManager"),
				sorted("publishConfig", MethodAlphabetical),
			},
		},
	}}
}

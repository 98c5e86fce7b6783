package locales

type yamlLocale struct {
	Locale   string `yaml:"locale"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`

	Form struct {
		Age               string `yaml:"age"`
		Sex               string `yaml:"sex"`
		Male              string `yaml:"male"`
		Female            string `yaml:"female"`
		YearsDrinking     string `yaml:"years_drinking"`
		DaysNow           string `yaml:"days_now"`
		DrinksPerOccasion string `yaml:"drinks_per_occasion"`
		DaysGoal          string `yaml:"days_goal"`
		Calculate         string `yaml:"calculate"`
	} `yaml:"form"`

	Result struct {
		YourGain    string `yaml:"your_gain"`
		LifespanBar string `yaml:"lifespan_bar"`
		Headline    string `yaml:"headline"`
	} `yaml:"result"`

	Tips struct {
		Header    string `yaml:"header"`
		GoodStart string `yaml:"good_start"`
		ReduceOne string `yaml:"reduce_one"`
		Support   string `yaml:"support"`
		TryReduce string `yaml:"try_reduce"`
	} `yaml:"tips"`

	Export struct {
		SeeDetails  string `yaml:"see_details"`
		SaveResult  string `yaml:"save_result"`
		DownloadTXT string `yaml:"download_txt"`
		DownloadCSV string `yaml:"download_csv"`
	} `yaml:"export"`

	Disclaimer string `yaml:"disclaimer"`
}

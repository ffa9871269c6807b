package registry

import "github.com/aretw0/pergola/pkg/domain"

const (
	table    = domain.ViewTable
	calendar = domain.ViewCalendar
	cards    = domain.ViewCards
	pipeline = domain.ViewPipeline
	list     = domain.ViewList
	route    = domain.ViewRoute
)

func views(v ...domain.ViewType) []domain.ViewType { return v }

// builtin is the fixed set of component kinds known to the renderer.
var builtin = map[string]ViewConfig{
	"clients":          {pipeline, views(pipeline, table, cards, list)},
	"contacts":         {list, views(list, table, cards)},
	"leads":            {pipeline, views(pipeline, table, list)},
	"staff":            {cards, views(cards, table, list)},
	"vendors":          {table, views(table, cards)},
	"products":         {table, views(table, cards)},
	"inventory":        {table, views(table, cards)},
	"equipment":        {cards, views(cards, table)},
	"assets":           {table, views(table, cards)},
	"calendar":         {calendar, views(calendar, list)},
	"appointments":     {calendar, views(calendar, table, list)},
	"schedules":        {calendar, views(calendar, table)},
	"shifts":           {calendar, views(calendar, table)},
	"invoices":         {table, views(table, list)},
	"payments":         {table, views(table, list)},
	"expenses":         {table, views(table, list)},
	"payroll":          {table, views(table, list)},
	"estimates":        {table, views(table, list)},
	"todos":            {list, views(list, table)},
	"jobs":             {pipeline, views(pipeline, table, cards)},
	"projects":         {cards, views(cards, table, pipeline)},
	"workflows":        {pipeline, views(pipeline, table)},
	"messages":         {list, views(list, table)},
	"notes":            {list, views(list, table)},
	"announcements":    {list, views(list, table)},
	"reviews":          {cards, views(cards, table, list)},
	"documents":        {table, views(table, cards)},
	"contracts":        {table, views(table, list)},
	"images":           {cards, views(cards, table)},
	"uploads":          {table, views(table, list)},
	"waivers":          {pipeline, views(pipeline, table, cards)},
	"forms":            {table, views(table, cards)},
	"signatures":       {table, views(table, list)},
	"reservations":     {calendar, views(calendar, table, list)},
	"tables":           {cards, views(cards, table)},
	"menus":            {cards, views(cards, table)},
	"orders":           {table, views(table, pipeline, list)},
	"rooms":            {cards, views(cards, table)},
	"recipes":          {cards, views(cards, table)},
	"waitlist":         {list, views(list, table)},
	"tip_pools":        {table, views(table, list)},
	"waste_log":        {table, views(table, list)},
	"suppliers":        {table, views(table, cards)},
	"purchase_orders":  {table, views(table, pipeline)},
	"classes":          {calendar, views(calendar, table, cards)},
	"membership_plans": {cards, views(cards, table, list)},
	"memberships":      {pipeline, views(pipeline, table, cards, list)},
	"courses":          {cards, views(cards, table)},
	"attendance":       {table, views(table, list)},
	"inspections":      {table, views(table, list)},
	"routes":           {route, views(route)},
	"fleet":            {cards, views(cards, table)},
	"checklists":       {list, views(list, table)},
	"permits":          {table, views(table, list)},
	"prescriptions":    {table, views(table, list)},
	"treatments":       {table, views(table, list)},
	"portfolios":       {cards, views(cards, table)},
	"galleries":        {cards, views(cards, table)},
	"listings":         {cards, views(cards, table)},
	"properties":       {table, views(table, cards)},
	"cases":            {pipeline, views(pipeline, table, list)},
	"venues":           {cards, views(cards, table)},
	"guests":           {table, views(table, list)},
	"campaigns":        {table, views(table, cards)},
	"loyalty":          {table, views(table, cards)},
	"surveys":          {table, views(table, list)},
	"tickets":          {pipeline, views(pipeline, table, list)},
	"knowledge":        {list, views(list, table)},
	"packages":         {cards, views(cards, table)},
	"subscriptions":    {table, views(table, list)},
	"time_tracking":    {table, views(table, list)},
	"social_media":     {cards, views(cards, table, calendar)},
	"reputation":       {table, views(table, cards)},
	"portal":           {table, views(table, cards)},
	"community":        {list, views(list, cards)},
	"chat_widget":      {list, views(list, table)},
}
